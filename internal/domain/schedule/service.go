package schedule

import "context"

type ScheduleService interface {
	GetSchedule(ctx context.Context, date string) (GetScheduleResponse, error)
	SaveSchedule(ctx context.Context, req SaveScheduleRequest) error
}
