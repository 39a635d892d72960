package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	// GetByDate returns the date's pairs ordered by number; an empty
	// schedule has no pairs.
	GetByDate(ctx context.Context, date time.Time) (Schedule, error)

	// Replace swaps the date's full pair set in one transaction.
	Replace(ctx context.Context, schedule Schedule) error
}
