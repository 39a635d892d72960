package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTx struct {
	pgx.Tx
	id int
}

func TestGetQuerier_PrefersContextTransaction(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{id: 1}

	q := GetQuerier(context.WithValue(context.Background(), txKey{}, tx), db)
	assert.Equal(t, tx, q)

	q = GetQuerier(context.Background(), db)
	assert.Equal(t, database.Querier(db.Pool), q)
}

func TestGetQuerier_IgnoresUntypedKey(t *testing.T) {
	db := &database.DB{}

	//nolint:staticcheck
	q := GetQuerier(context.WithValue(context.Background(), "tx", stubTx{id: 2}), db)
	assert.Equal(t, database.Querier(db.Pool), q)
}

func TestWithTransaction_JoinsOuterTransaction(t *testing.T) {
	outer := stubTx{id: 3}
	ctx := context.WithValue(context.Background(), txKey{}, outer)

	var seen database.Querier
	err := WithTransaction(ctx, nil, func(ctx context.Context) error {
		seen = GetQuerier(ctx, nil)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, outer, seen)

	boom := errors.New("boom")
	err = WithTransaction(ctx, nil, func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}
