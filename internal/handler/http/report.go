package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{Month: chi.URLParam(r, "month")}

	result, err := h.reportService.GenerateMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, result)
}

// Export implements ReportHandler. The format defaults to xlsx.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := report.ExportReportRequest{
		Month:  chi.URLParam(r, "month"),
		Format: r.URL.Query().Get("format"),
	}
	if req.Format == "" {
		req.Format = string(report.ExportXLSX)
	}

	file, err := h.reportService.ExportMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Filename, file.ContentType, file.Content)
}
