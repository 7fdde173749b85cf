package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/report"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	UpdateReport(w http.ResponseWriter, r *http.Request)
	UpdateAllReports(w http.ResponseWriter, r *http.Request)
	AnalyzeReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// UpdateReport implements ReportHandler.
func (h *reportHandlerImpl) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.reportService.UpdateReport(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, "Error updating employee report")
		return
	}

	response.Success(w, "Employee report updated successfully", result)
}

// UpdateAllReports implements ReportHandler.
func (h *reportHandlerImpl) UpdateAllReports(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.UpdateAllReports(r.Context())
	if err != nil {
		response.HandleError(w, err, "Error updating all employee reports")
		return
	}

	response.SuccessWithCount(w, "All employee reports updated successfully", result.Count, nil)
}

// AnalyzeReport implements ReportHandler.
func (h *reportHandlerImpl) AnalyzeReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.reportService.AnalyzeReport(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, "Error generating employee report analysis")
		return
	}

	response.Success(w, "Employee report analysis generated successfully", result)
}
