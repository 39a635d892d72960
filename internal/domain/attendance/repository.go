package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// ListByDate returns the date's absences ordered by pair and student
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// ListBetween returns absences in [from, to) ordered by date and pair
	ListBetween(ctx context.Context, from, to time.Time) ([]Record, error)

	// Upsert stores the record, replacing any record with the same key
	Upsert(ctx context.Context, record Record) error

	// Delete removes the record for key; a missing record is not an error
	Delete(ctx context.Context, key Key) error
}
