package report

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/export"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
)

type ReportServiceImpl struct {
	studentRepo    student.StudentRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewReportService(studentRepo student.StudentRepository, attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
	}
}

// GenerateMonthlyReport sums every student's excused and unexcused hours for
// the month and groups their absences by reason. Students on academic leave
// stay in the report.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}
	periodStart, _ := validator.IsValidMonth(req.Month)
	periodEnd := periodStart.AddDate(0, 1, 0)

	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get roster: %w", err)
	}

	records, err := s.attendanceRepo.ListBetween(ctx, periodStart, periodEnd)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get attendance data: %w", err)
	}

	byStudent := make(map[int][]report.Absence)
	for _, rec := range records {
		byStudent[rec.StudentID] = append(byStudent[rec.StudentID], report.Absence{
			Date:       rec.Date.Format(validator.DateLayout),
			PairNumber: rec.PairNumber,
			Reason:     rec.Reason,
			Comment:    rec.Comment,
			Respectful: rec.Respectful,
			Hours:      rec.Hours,
		})
	}

	result := report.MonthlyReport{
		Month:  req.Month,
		Report: make([]report.StudentReport, 0, len(students)),
	}
	for _, st := range students {
		row := buildStudentReport(st, byStudent[st.ID])
		result.Summary.RespectfulHours += row.RespectfulHours
		result.Summary.NonRespectfulHours += row.NonRespectfulHours
		result.Report = append(result.Report, row)
	}
	result.Summary.TotalHours = result.Summary.RespectfulHours + result.Summary.NonRespectfulHours

	return result, nil
}

// ExportMonthlyReport renders the monthly report as a spreadsheet download.
func (s *ReportServiceImpl) ExportMonthlyReport(ctx context.Context, req report.ExportReportRequest) (report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	monthly, err := s.GenerateMonthlyReport(ctx, report.MonthlyReportRequest{Month: req.Month})
	if err != nil {
		return report.ExportFile{}, err
	}

	switch report.ExportFormat(req.Format) {
	case report.ExportXLSX:
		content, err := export.ReportXLSX(monthly)
		if err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to render xlsx: %w", err)
		}
		return report.ExportFile{
			Filename:    fmt.Sprintf("attendance_%s.xlsx", req.Month),
			ContentType: export.ContentTypeXLSX,
			Content:     content,
		}, nil
	case report.ExportCSV:
		content, err := export.ReportCSV(monthly)
		if err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to render csv: %w", err)
		}
		return report.ExportFile{
			Filename:    fmt.Sprintf("attendance_%s.csv", req.Month),
			ContentType: export.ContentTypeCSV,
			Content:     content,
		}, nil
	default:
		return report.ExportFile{}, report.ErrUnknownExportFormat
	}
}

func buildStudentReport(st student.Student, absences []report.Absence) report.StudentReport {
	resp := student.ToResponse(st)
	row := report.StudentReport{
		ID:       resp.ID,
		Name:     resp.Name,
		Status:   resp.Status,
		Details:  resp.Details,
		Absences: make([]report.AbsenceResponse, 0, len(absences)),
	}

	for _, a := range absences {
		if a.Respectful {
			row.RespectfulHours += a.Hours
		} else {
			row.NonRespectfulHours += a.Hours
		}
		row.Absences = append(row.Absences, report.AbsenceResponse{
			Date:       a.Date,
			PairNumber: a.PairNumber,
			Reason:     a.Reason,
			Respectful: a.Respectful,
			Hours:      a.Hours,
			Comment:    a.Comment,
		})
	}
	row.TotalHours = row.RespectfulHours + row.NonRespectfulHours
	row.Reasons = report.GroupAbsences(absences).String()

	return row
}
