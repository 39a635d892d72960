package export

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// ReportXLSX renders the report as a single-sheet workbook with a title row,
// a header, one row per student and a totals row.
func ReportXLSX(r report.MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheetName, "A1", fmt.Sprintf("Attendance report for %s", r.Month)); err != nil {
		return nil, err
	}
	if err := f.MergeCell(sheetName, "A1", "G1"); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetName, "A3", &reportHeader); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A3", "G3", headerStyle); err != nil {
		return nil, err
	}

	rowNum := 4
	for _, row := range r.Report {
		values := []interface{}{
			row.ID,
			row.Name,
			statusCell(row),
			row.RespectfulHours,
			row.NonRespectfulHours,
			row.TotalHours,
			row.Reasons,
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", rowNum), &values); err != nil {
			return nil, err
		}
		rowNum++
	}
	if rowNum > 4 {
		if err := f.SetCellStyle(sheetName, "A4", fmt.Sprintf("G%d", rowNum-1), wrapStyle); err != nil {
			return nil, err
		}
	}

	totals := []interface{}{"", "Total", "", r.Summary.RespectfulHours, r.Summary.NonRespectfulHours, r.Summary.TotalHours}
	if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", rowNum), &totals); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("G%d", rowNum), headerStyle); err != nil {
		return nil, err
	}

	widths := map[string]float64{"A": 6, "B": 36, "C": 28, "D": 14, "E": 16, "F": 12, "G": 80}
	for col, width := range widths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
