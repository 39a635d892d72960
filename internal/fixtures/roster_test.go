package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster(t *testing.T) {
	students, err := Roster()
	require.NoError(t, err)
	require.Len(t, students, 21)

	first := students[0]
	assert.Equal(t, 1, first.ID)
	assert.True(t, first.OnLeave())
	require.NotNil(t, first.Details)
	assert.Contains(t, *first.Details, "25.10.2024")

	for _, s := range students[1:] {
		assert.False(t, s.OnLeave(), "student %d", s.ID)
		assert.Nil(t, s.Details, "student %d", s.ID)
		assert.NotEmpty(t, s.Name)
	}
}
