// Package export renders the monthly attendance report as spreadsheet files.
package export

import (
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv; charset=windows-1251"
)

var reportHeader = []string{
	"ID", "Student", "Status", "Excused hours", "Unexcused hours", "Total hours", "Reasons",
}

func statusCell(row report.StudentReport) string {
	if row.Status == nil {
		return ""
	}
	if row.Details != nil && *row.Details != "" {
		return *row.Status + ": " + *row.Details
	}
	return *row.Status
}
