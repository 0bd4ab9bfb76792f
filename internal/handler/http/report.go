package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/payledger/payledger-backend-go/internal/domain/report"
	"github.com/payledger/payledger-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// MonthlySummary implements ReportHandler. ?branch= filters to one branch.
func (h *reportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, yearErr := strconv.Atoi(chi.URLParam(r, "year"))
	month, monthErr := strconv.Atoi(chi.URLParam(r, "month"))
	if yearErr != nil || monthErr != nil {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	summary, err := h.reportService.MonthlySummary(r.Context(), year, month, r.URL.Query().Get("branch"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
