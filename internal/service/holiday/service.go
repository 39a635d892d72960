package holiday

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/workday"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/metrics"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

type holidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &holidayServiceImpl{
		holidayRepo: holidayRepo,
	}
}

// IsHoliday implements holiday.HolidayService.
func (s *holidayServiceImpl) IsHoliday(ctx context.Context, date string) (holiday.HolidayStatusResponse, error) {
	d, ok := validator.IsValidDate(date)
	if !ok {
		return holiday.HolidayStatusResponse{}, holiday.ErrInvalidDate
	}

	isHoliday, err := s.holidayRepo.IsHoliday(ctx, d)
	if err != nil {
		return holiday.HolidayStatusResponse{}, err
	}
	return holiday.HolidayStatusResponse{IsHoliday: isHoliday}, nil
}

// SetHoliday implements holiday.HolidayService.
func (s *holidayServiceImpl) SetHoliday(ctx context.Context, req holiday.SetHolidayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	d, _ := validator.IsValidDate(req.Date)

	if err := s.holidayRepo.Set(ctx, d, req.IsHoliday); err != nil {
		return err
	}
	metrics.RecordWrite(metrics.OperationHoliday)
	slog.InfoContext(ctx, "holiday updated", slog.String("date", req.Date), slog.Bool("is_holiday", req.IsHoliday))
	return nil
}

// DayStatus implements holiday.HolidayService.
func (s *holidayServiceImpl) DayStatus(ctx context.Context, date string, forceWorkday bool) (workday.Day, error) {
	d, ok := validator.IsValidDate(date)
	if !ok {
		return workday.Day{}, holiday.ErrInvalidDate
	}

	isHoliday, err := s.holidayRepo.IsHoliday(ctx, d)
	if err != nil {
		return workday.Day{}, err
	}
	return workday.Evaluate(d, isHoliday, forceWorkday), nil
}

// ListMonth implements holiday.HolidayService.
func (s *holidayServiceImpl) ListMonth(ctx context.Context, month string) (holiday.ListHolidayResponse, error) {
	from, ok := validator.IsValidMonth(month)
	if !ok {
		return holiday.ListHolidayResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	holidays, err := s.holidayRepo.ListBetween(ctx, from, from.AddDate(0, 1, 0))
	if err != nil {
		return holiday.ListHolidayResponse{}, err
	}

	resp := holiday.ListHolidayResponse{Month: month, Holidays: make([]string, 0, len(holidays))}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, h.Date.Format(validator.DateLayout))
	}
	return resp, nil
}
