package response

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/workday"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Malformed request bodies
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		BadRequest(w, "Invalid request body", nil)
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrNotEditor):
		Forbidden(w, err.Error())

	// Day eligibility
	case errors.Is(err, workday.ErrDayNotWorking):
		Conflict(w, "DAY_NOT_WORKING", "Day is a holiday or weekend; confirm it as a working day first")

	// Student domain errors
	case errors.Is(err, student.ErrStudentNotFound):
		NotFound(w, "Student not found")
	case errors.Is(err, student.ErrStudentOnLeave):
		Conflict(w, "STUDENT_ON_LEAVE", "Student is on academic leave")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrPairNotScheduled):
		Conflict(w, "PAIR_NOT_SCHEDULED", "Pair is not in the schedule for this date")

	// Malformed path parameters
	case errors.Is(err, schedule.ErrInvalidDateFormat),
		errors.Is(err, attendance.ErrInvalidDateFormat),
		errors.Is(err, holiday.ErrInvalidDate),
		errors.Is(err, report.ErrUnknownExportFormat):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unexpected error", slog.Any("error", err))
		InternalServerError(w, "An unexpected error occurred")
	}
}
