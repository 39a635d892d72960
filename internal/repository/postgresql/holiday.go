package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// IsHoliday implements holiday.HolidayRepository.
func (r *holidayRepository) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}
	return exists, nil
}

// Set implements holiday.HolidayRepository.
func (r *holidayRepository) Set(ctx context.Context, date time.Time, isHoliday bool) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM holidays WHERE date = $1`
	if isHoliday {
		query = `INSERT INTO holidays (date) VALUES ($1) ON CONFLICT (date) DO NOTHING`
	}
	if _, err := q.Exec(ctx, query, date); err != nil {
		return fmt.Errorf("failed to set holiday: %w", err)
	}
	return nil
}

// ListBetween implements holiday.HolidayRepository.
func (r *holidayRepository) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT date FROM holidays
		WHERE date >= $1 AND date < $2
		ORDER BY date
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.Date); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}
