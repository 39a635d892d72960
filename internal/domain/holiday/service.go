package holiday

import (
	"context"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/workday"
)

type HolidayService interface {
	IsHoliday(ctx context.Context, date string) (HolidayStatusResponse, error)
	SetHoliday(ctx context.Context, req SetHolidayRequest) error

	// DayStatus evaluates the workday policy for date with the caller's override
	DayStatus(ctx context.Context, date string, forceWorkday bool) (workday.Day, error)

	// ListMonth returns the holiday dates of a YYYY-MM month
	ListMonth(ctx context.Context, month string) (ListHolidayResponse, error)
}
