package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/payledger/payledger-backend-go/internal/domain/payroll"
	"github.com/payledger/payledger-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	PreviewMonth(w http.ResponseWriter, r *http.Request)
	PreviewEmployee(w http.ResponseWriter, r *http.Request)
	CommitPeriod(w http.ResponseWriter, r *http.Request)
	CommitAll(w http.ResponseWriter, r *http.Request)
	GetCommit(w http.ResponseWriter, r *http.Request)
	ListCommits(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func payrollPeriod(r *http.Request) (year, month int, ok bool) {
	year, yearErr := strconv.Atoi(chi.URLParam(r, "year"))
	month, monthErr := strconv.Atoi(chi.URLParam(r, "month"))
	return year, month, yearErr == nil && monthErr == nil
}

// PreviewMonth implements PayrollHandler. Previews never advance loan state.
func (h *payrollHandlerImpl) PreviewMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := payrollPeriod(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	breakdowns, err := h.payrollService.PreviewMonth(r.Context(), year, month, r.URL.Query().Get("branch"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToBreakdownResponses(breakdowns))
}

// PreviewEmployee implements PayrollHandler
func (h *payrollHandlerImpl) PreviewEmployee(w http.ResponseWriter, r *http.Request) {
	year, month, ok := payrollPeriod(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	breakdown, err := h.payrollService.PreviewEmployee(r.Context(), chi.URLParam(r, "id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToBreakdownResponse(breakdown))
}

// CommitPeriod implements PayrollHandler. Committing twice returns the
// stored commit unchanged.
func (h *payrollHandlerImpl) CommitPeriod(w http.ResponseWriter, r *http.Request) {
	year, month, ok := payrollPeriod(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	commit, err := h.payrollService.CommitPeriod(r.Context(), chi.URLParam(r, "id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period committed", payroll.ToCommitResponse(commit))
}

// CommitAll implements PayrollHandler
func (h *payrollHandlerImpl) CommitAll(w http.ResponseWriter, r *http.Request) {
	year, month, ok := payrollPeriod(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	commits, err := h.payrollService.CommitAll(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period committed for all employees", payroll.ToCommitResponses(commits))
}

// GetCommit implements PayrollHandler
func (h *payrollHandlerImpl) GetCommit(w http.ResponseWriter, r *http.Request) {
	year, month, ok := payrollPeriod(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	commit, err := h.payrollService.GetCommit(r.Context(), chi.URLParam(r, "id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToCommitResponse(commit))
}

// ListCommits implements PayrollHandler
func (h *payrollHandlerImpl) ListCommits(w http.ResponseWriter, r *http.Request) {
	year, month, ok := payrollPeriod(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	commits, err := h.payrollService.ListCommits(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToCommitResponses(commits))
}
