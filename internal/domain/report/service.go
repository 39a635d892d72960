package report

import "context"

type ReportService interface {
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
	ExportMonthlyReport(ctx context.Context, req ExportReportRequest) (ExportFile, error)
}
