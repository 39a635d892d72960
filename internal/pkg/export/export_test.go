package export

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

func sampleReport() report.MonthlyReport {
	status := "academic_leave"
	details := "since 2024-10-25"
	return report.MonthlyReport{
		Month: "2024-03",
		Report: []report.StudentReport{
			{ID: 1, Name: "Акулов Геннадий", Status: &status, Details: &details, Reasons: report.NoAbsencesText},
			{
				ID: 2, Name: "Аллахяров Сакрат",
				RespectfulHours: 2, NonRespectfulHours: 1, TotalHours: 3,
				Reasons: "Family (1 times: overslept); Order (1 times: 2024-03-06 Period 1)",
			},
		},
		Summary: report.Summary{RespectfulHours: 2, NonRespectfulHours: 1, TotalHours: 3},
	}
}

func TestReportCSV_Windows1251(t *testing.T) {
	content, err := ReportCSV(sampleReport())
	require.NoError(t, err)

	decoded, err := io.ReadAll(charmap.Windows1251.NewDecoder().Reader(bytes.NewReader(content)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(decoded)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID;Student;Status;Excused hours;Unexcused hours;Total hours;Reasons", lines[0])
	assert.Equal(t, "1;Акулов Геннадий;academic_leave: since 2024-10-25;0;0;0;No absences.", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2;Аллахяров Сакрат;;2;1;3;"))
	assert.Equal(t, ";Total;;2;1;3;", lines[3])

	// Cyrillic is single-byte in the code page.
	assert.NotContains(t, string(content), "Акулов")
}

func TestReportCSV_ReplacesCharactersOutsideCodePage(t *testing.T) {
	r := sampleReport()
	r.Report[1].Reasons = "Family (1 times: sick 🤒, Łódź, 東京)"

	content, err := ReportCSV(r)
	require.NoError(t, err)

	decoded, err := io.ReadAll(charmap.Windows1251.NewDecoder().Reader(bytes.NewReader(content)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(decoded)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "2;Аллахяров Сакрат;;2;1;3;Family (1 times: sick "))
	assert.NotContains(t, lines[2], "🤒")
	assert.Equal(t, ";Total;;2;1;3;", lines[3])
}

func TestReportXLSX(t *testing.T) {
	content, err := ReportXLSX(sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Attendance report for 2024-03", title)

	name, err := f.GetCellValue(sheetName, "B5")
	require.NoError(t, err)
	assert.Equal(t, "Аллахяров Сакрат", name)

	total, err := f.GetCellValue(sheetName, "F6")
	require.NoError(t, err)
	assert.Equal(t, "3", total)
}
