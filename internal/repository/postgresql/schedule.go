package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// GetByDate implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByDate(ctx context.Context, date time.Time) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT pair_number, pair_type
		FROM schedule_pairs
		WHERE date = $1
		ORDER BY pair_number
	`, date)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	defer rows.Close()

	s := schedule.Schedule{Date: date}
	for rows.Next() {
		var (
			p        schedule.Pair
			pairType string
		)
		if err := rows.Scan(&p.Number, &pairType); err != nil {
			return schedule.Schedule{}, fmt.Errorf("failed to scan schedule pair: %w", err)
		}
		p.Type = schedule.PairType(pairType)
		s.Pairs = append(s.Pairs, p)
	}
	if err := rows.Err(); err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to iterate schedule pairs: %w", err)
	}

	return s, nil
}

// Replace implements schedule.ScheduleRepository.
func (r *scheduleRepository) Replace(ctx context.Context, s schedule.Schedule) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)
		if _, err := q.Exec(ctx, `DELETE FROM schedule_pairs WHERE date = $1`, s.Date); err != nil {
			return fmt.Errorf("failed to clear schedule: %w", err)
		}
		for _, p := range s.Pairs {
			_, err := q.Exec(ctx, `
				INSERT INTO schedule_pairs (date, pair_number, pair_type)
				VALUES ($1, $2, $3)
			`, s.Date, p.Number, string(p.Type))
			if err != nil {
				return fmt.Errorf("failed to insert schedule pair %d: %w", p.Number, err)
			}
		}
		return nil
	})
}
