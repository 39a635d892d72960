package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReportCSV writes the report in Windows-1251, the code page spreadsheet
// programs assume for Cyrillic CSV files. Characters outside the code page
// are written as the encoding's replacement byte.
func ReportCSV(r report.MonthlyReport) ([]byte, error) {
	var b bytes.Buffer
	tw := transform.NewWriter(&b, encoding.ReplaceUnsupported(charmap.Windows1251.NewEncoder()))
	w := csv.NewWriter(tw)
	w.Comma = ';'

	if err := w.Write(reportHeader); err != nil {
		return nil, err
	}
	for _, row := range r.Report {
		record := []string{
			strconv.Itoa(row.ID),
			row.Name,
			statusCell(row),
			strconv.Itoa(row.RespectfulHours),
			strconv.Itoa(row.NonRespectfulHours),
			strconv.Itoa(row.TotalHours),
			row.Reasons,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	summary := []string{
		"", "Total", "",
		strconv.Itoa(r.Summary.RespectfulHours),
		strconv.Itoa(r.Summary.NonRespectfulHours),
		strconv.Itoa(r.Summary.TotalHours),
		"",
	}
	if err := w.Write(summary); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
