package attendance

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/reason"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/workday"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/metrics"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleRepository
	holidayRepo    holiday.HolidayRepository
	studentRepo    student.StudentRepository
	reasons        *reason.Catalog
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	holidayRepo holiday.HolidayRepository,
	studentRepo student.StudentRepository,
	reasons *reason.Catalog,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		holidayRepo:    holidayRepo,
		studentRepo:    studentRepo,
		reasons:        reasons,
	}
}

// GetAttendance implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetAttendance(ctx context.Context, date string) (attendance.ListAttendanceResponse, error) {
	d, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.ListAttendanceResponse{}, attendance.ErrInvalidDateFormat
	}

	records, err := s.attendanceRepo.ListByDate(ctx, d)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{Attendance: make([]attendance.AttendanceResponse, 0, len(records))}
	for _, rec := range records {
		resp.Attendance = append(resp.Attendance, attendance.ToResponse(rec))
	}
	return resp, nil
}

// WriteAttendance implements attendance.AttendanceService.
func (s *attendanceServiceImpl) WriteAttendance(ctx context.Context, req attendance.WriteAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		metrics.RecordRejection(metrics.OperationAttendance, metrics.RejectValidation)
		return err
	}
	d, _ := validator.IsValidDate(req.Date)

	isHoliday, err := s.holidayRepo.IsHoliday(ctx, d)
	if err != nil {
		return err
	}
	if err := workday.Evaluate(d, isHoliday, req.ForceWorkday).Check(); err != nil {
		metrics.RecordRejection(metrics.OperationAttendance, metrics.RejectDayNotWorking)
		slog.InfoContext(ctx, "attendance rejected on non-working day", slog.String("date", req.Date))
		return err
	}

	key := attendance.Key{Date: d, PairNumber: req.Pair, StudentID: req.StudentID}

	if attendance.Status(req.Status) == attendance.StatusPresent {
		if err := s.attendanceRepo.Delete(ctx, key); err != nil {
			return err
		}
		metrics.RecordWrite(metrics.OperationAttendance)
		return nil
	}

	st, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, student.ErrStudentNotFound) {
			metrics.RecordRejection(metrics.OperationAttendance, metrics.RejectStudent)
		}
		return err
	}
	if st.OnLeave() {
		metrics.RecordRejection(metrics.OperationAttendance, metrics.RejectStudent)
		return student.ErrStudentOnLeave
	}

	sched, err := s.scheduleRepo.GetByDate(ctx, d)
	if err != nil {
		return err
	}
	pair, ok := sched.Pair(req.Pair)
	if !ok {
		metrics.RecordRejection(metrics.OperationAttendance, metrics.RejectNotScheduled)
		return schedule.ErrPairNotScheduled
	}

	reasonName, respectful := s.reasons.Resolve(req.Reason)
	rec := attendance.Record{
		Date:       d,
		PairNumber: req.Pair,
		StudentID:  req.StudentID,
		Reason:     reasonName,
		Respectful: respectful,
		Hours:      pair.Type.Hours(),
		Comment:    strings.TrimSpace(req.Comment),
	}

	if err := s.attendanceRepo.Upsert(ctx, rec); err != nil {
		return err
	}
	metrics.RecordWrite(metrics.OperationAttendance)
	slog.DebugContext(ctx, "absence recorded",
		slog.String("date", req.Date),
		slog.Int("pair", req.Pair),
		slog.Int("student_id", req.StudentID),
		slog.String("reason", reasonName),
	)
	return nil
}
