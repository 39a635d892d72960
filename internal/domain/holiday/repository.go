package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)

	// Set marks the date as a holiday; Set with false removes the mark.
	// Both directions are idempotent.
	Set(ctx context.Context, date time.Time, isHoliday bool) error

	// ListBetween returns holidays in [from, to)
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
