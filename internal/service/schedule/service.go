package schedule

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/workday"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/metrics"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

type scheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	holidayRepo  holiday.HolidayRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository, holidayRepo holiday.HolidayRepository) schedule.ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		holidayRepo:  holidayRepo,
	}
}

// GetSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetSchedule(ctx context.Context, date string) (schedule.GetScheduleResponse, error) {
	d, ok := validator.IsValidDate(date)
	if !ok {
		return schedule.GetScheduleResponse{}, schedule.ErrInvalidDateFormat
	}

	sched, err := s.scheduleRepo.GetByDate(ctx, d)
	if err != nil {
		return schedule.GetScheduleResponse{}, err
	}
	if len(sched.Pairs) == 0 {
		return schedule.GetScheduleResponse{Schedule: nil}, nil
	}

	resp := schedule.ToResponse(sched)
	return schedule.GetScheduleResponse{Schedule: &resp}, nil
}

// SaveSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) SaveSchedule(ctx context.Context, req schedule.SaveScheduleRequest) error {
	if err := req.Validate(); err != nil {
		metrics.RecordRejection(metrics.OperationSchedule, metrics.RejectValidation)
		return err
	}
	d, _ := validator.IsValidDate(req.Date)

	isHoliday, err := s.holidayRepo.IsHoliday(ctx, d)
	if err != nil {
		return err
	}
	if err := workday.Evaluate(d, isHoliday, req.ForceWorkday).Check(); err != nil {
		metrics.RecordRejection(metrics.OperationSchedule, metrics.RejectDayNotWorking)
		slog.InfoContext(ctx, "schedule rejected on non-working day", slog.String("date", req.Date))
		return err
	}

	sched := schedule.Schedule{Date: d, Pairs: make([]schedule.Pair, 0, len(req.Pairs))}
	for _, p := range req.Pairs {
		sched.Pairs = append(sched.Pairs, schedule.Pair{Number: p.Number, Type: schedule.PairType(p.Type)})
	}

	if err := s.scheduleRepo.Replace(ctx, sched); err != nil {
		return err
	}
	metrics.RecordWrite(metrics.OperationSchedule)
	slog.InfoContext(ctx, "schedule saved", slog.String("date", req.Date), slog.Int("pairs", len(sched.Pairs)))
	return nil
}
