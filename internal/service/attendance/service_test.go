package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/reason"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/workday"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-tracker/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tuesday  = "2024-03-05"
	saturday = "2024-03-09"
)

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func setupAttendance(t *testing.T) (*memory.Store, attendance.AttendanceService) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	leave := student.StatusAcademicLeave
	require.NoError(t, store.Students().CreateMany(ctx, []student.Student{
		{ID: 1, Name: "On Leave", Status: &leave},
		{ID: 2, Name: "Regular"},
	}))
	for _, d := range []string{tuesday, saturday} {
		require.NoError(t, store.Schedules().Replace(ctx, schedule.Schedule{Date: date(d), Pairs: []schedule.Pair{
			{Number: 2, Type: schedule.PairTypeRegular},
			{Number: 3, Type: schedule.PairTypeOther},
		}}))
	}

	svc := NewAttendanceService(store.Attendance(), store.Schedules(), store.Holidays(), store.Students(), reason.Default())
	return store, svc
}

func TestAttendanceService_AbsentWithoutReason(t *testing.T) {
	ctx := context.Background()
	_, svc := setupAttendance(t)

	err := svc.WriteAttendance(ctx, attendance.WriteAttendanceRequest{
		Date: tuesday, Pair: 2, StudentID: 2, Status: "absent", Reason: "",
	})
	require.NoError(t, err)

	got, err := svc.GetAttendance(ctx, tuesday)
	require.NoError(t, err)
	require.Len(t, got.Attendance, 1)
	rec := got.Attendance[0]
	assert.Equal(t, "Unknown", rec.Reason)
	assert.Equal(t, 2, rec.Hours)
	assert.False(t, rec.Respectful)
	assert.Equal(t, "absent", rec.Status)
}

func TestAttendanceService_DerivesRespectfulAndHours(t *testing.T) {
	ctx := context.Background()
	_, svc := setupAttendance(t)

	notRespectful := false
	tenHours := 10
	err := svc.WriteAttendance(ctx, attendance.WriteAttendanceRequest{
		Date: tuesday, Pair: 3, StudentID: 2, Status: "absent",
		Reason: "Medical certificate", Respectful: &notRespectful, Hours: &tenHours, Comment: " flu ",
	})
	require.NoError(t, err)

	got, err := svc.GetAttendance(ctx, tuesday)
	require.NoError(t, err)
	require.Len(t, got.Attendance, 1)
	assert.True(t, got.Attendance[0].Respectful)
	assert.Equal(t, 1, got.Attendance[0].Hours)
	assert.Equal(t, "flu", got.Attendance[0].Comment)
}

func TestAttendanceService_ReplaceThenPresentRemoves(t *testing.T) {
	ctx := context.Background()
	_, svc := setupAttendance(t)

	req := attendance.WriteAttendanceRequest{Date: tuesday, Pair: 2, StudentID: 2, Status: "absent", Reason: "Family"}
	require.NoError(t, svc.WriteAttendance(ctx, req))
	req.Reason = "Truancy"
	require.NoError(t, svc.WriteAttendance(ctx, req))

	got, err := svc.GetAttendance(ctx, tuesday)
	require.NoError(t, err)
	require.Len(t, got.Attendance, 1)
	assert.Equal(t, "Truancy", got.Attendance[0].Reason)

	req.Status = "present"
	require.NoError(t, svc.WriteAttendance(ctx, req))

	got, err = svc.GetAttendance(ctx, tuesday)
	require.NoError(t, err)
	assert.Empty(t, got.Attendance)
}

func TestAttendanceService_WeekendAndHoliday(t *testing.T) {
	ctx := context.Background()
	store, svc := setupAttendance(t)

	req := attendance.WriteAttendanceRequest{Date: saturday, Pair: 2, StudentID: 2, Status: "absent"}
	assert.ErrorIs(t, svc.WriteAttendance(ctx, req), workday.ErrDayNotWorking)

	req.Status = "present"
	assert.ErrorIs(t, svc.WriteAttendance(ctx, req), workday.ErrDayNotWorking)

	req.Status = "absent"
	req.ForceWorkday = true
	assert.NoError(t, svc.WriteAttendance(ctx, req))

	require.NoError(t, store.Holidays().Set(ctx, date(tuesday), true))
	holidayReq := attendance.WriteAttendanceRequest{Date: tuesday, Pair: 2, StudentID: 2, Status: "absent"}
	assert.ErrorIs(t, svc.WriteAttendance(ctx, holidayReq), workday.ErrDayNotWorking)

	holidayReq.ForceWorkday = true
	assert.NoError(t, svc.WriteAttendance(ctx, holidayReq))
}

func TestAttendanceService_Rejections(t *testing.T) {
	ctx := context.Background()
	_, svc := setupAttendance(t)

	tests := []struct {
		name string
		req  attendance.WriteAttendanceRequest
		want error
	}{
		{"unknown student", attendance.WriteAttendanceRequest{Date: tuesday, Pair: 2, StudentID: 99, Status: "absent"}, student.ErrStudentNotFound},
		{"student on leave", attendance.WriteAttendanceRequest{Date: tuesday, Pair: 2, StudentID: 1, Status: "absent"}, student.ErrStudentOnLeave},
		{"pair not scheduled", attendance.WriteAttendanceRequest{Date: tuesday, Pair: 4, StudentID: 2, Status: "absent"}, schedule.ErrPairNotScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.WriteAttendance(ctx, tt.req), tt.want)
		})
	}
}

func TestAttendanceService_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	_, svc := setupAttendance(t)

	err := svc.WriteAttendance(ctx, attendance.WriteAttendanceRequest{Date: "bad", Pair: 9, Status: "late"})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "pair")
	assert.Contains(t, fields, "student_id")
	assert.Contains(t, fields, "status")

	_, err = svc.GetAttendance(ctx, "2024/03/05")
	assert.ErrorIs(t, err, attendance.ErrInvalidDateFormat)
}
