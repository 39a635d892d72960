package report

import (
	"strings"

	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month string `json:"month"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
)

var ExportFormatValues = []string{string(ExportXLSX), string(ExportCSV)}

type ExportReportRequest struct {
	Month  string `json:"month"`
	Format string `json:"format"`
}

func (r *ExportReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}
	if !validator.IsInSlice(r.Format, ExportFormatValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: " + strings.Join(ExportFormatValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceResponse struct {
	Date       string `json:"date"`
	PairNumber int    `json:"pair_number"`
	Reason     string `json:"reason"`
	Respectful bool   `json:"respectful"`
	Hours      int    `json:"hours"`
	Comment    string `json:"comment"`
}

type StudentReport struct {
	ID                 int               `json:"id"`
	Name               string            `json:"name"`
	Status             *string           `json:"status"`
	Details            *string           `json:"details"`
	RespectfulHours    int               `json:"respectful_hours"`
	NonRespectfulHours int               `json:"non_respectful_hours"`
	TotalHours         int               `json:"total_hours"`
	Reasons            string            `json:"reasons"`
	Absences           []AbsenceResponse `json:"absences"`
}

type Summary struct {
	RespectfulHours    int `json:"respectful_hours"`
	NonRespectfulHours int `json:"non_respectful_hours"`
	TotalHours         int `json:"total_hours"`
}

// MonthlyReport carries no generation timestamp, so unchanged data always
// renders the same report.
type MonthlyReport struct {
	Month   string          `json:"month"`
	Report  []StudentReport `json:"report"`
	Summary Summary         `json:"summary"`
}

// ExportFile is a rendered report ready to be sent as a download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
