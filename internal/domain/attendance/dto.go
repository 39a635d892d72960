package attendance

import (
	"strings"

	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

// WriteAttendanceRequest sets or clears one student's absence for one pair.
// Respectful and Hours are accepted for compatibility and ignored: the server
// derives both from the reason catalog and the stored pair type.
type WriteAttendanceRequest struct {
	Date         string `json:"date"`
	Pair         int    `json:"pair"`
	StudentID    int    `json:"student_id"`
	Status       string `json:"status"`
	Reason       string `json:"reason"`
	Respectful   *bool  `json:"respectful,omitempty"`
	Hours        *int   `json:"hours,omitempty"`
	Comment      string `json:"comment"`
	ForceWorkday bool   `json:"force_workday"`
}

func (r *WriteAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Pair < 1 || r.Pair > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "pair",
			Message: "pair must be between 1 and 5",
		})
	}

	if r.StudentID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "student_id",
			Message: "student_id is required",
		})
	}

	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	Date       string `json:"date"`
	PairNumber int    `json:"pair_number"`
	StudentID  int    `json:"student_id"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
	Respectful bool   `json:"respectful"`
	Hours      int    `json:"hours"`
	Comment    string `json:"comment"`
}

type ListAttendanceResponse struct {
	Attendance []AttendanceResponse `json:"attendance"`
}

func ToResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		Date:       r.Date.Format("2006-01-02"),
		PairNumber: r.PairNumber,
		StudentID:  r.StudentID,
		Status:     string(StatusAbsent),
		Reason:     r.Reason,
		Respectful: r.Respectful,
		Hours:      r.Hours,
		Comment:    r.Comment,
	}
}
