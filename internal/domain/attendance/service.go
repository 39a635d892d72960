package attendance

import "context"

type AttendanceService interface {
	GetAttendance(ctx context.Context, date string) (ListAttendanceResponse, error)

	// WriteAttendance records an absence or clears it when the status is present
	WriteAttendance(ctx context.Context, req WriteAttendanceRequest) error
}
