package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/payledger/payledger-backend-go/internal/handler/http/response"
	"github.com/payledger/payledger-backend-go/internal/service/sheet"
)

type SheetHandler interface {
	PaySheet(w http.ResponseWriter, r *http.Request)
	AllEmployeesSheet(w http.ResponseWriter, r *http.Request)
	GrandTotalsSheet(w http.ResponseWriter, r *http.Request)
	BranchPaySheet(w http.ResponseWriter, r *http.Request)
}

type sheetHandlerImpl struct {
	sheetService sheet.SheetService
}

func NewSheetHandler(sheetService sheet.SheetService) SheetHandler {
	return &sheetHandlerImpl{sheetService: sheetService}
}

type sheetResponse struct {
	Path string `json:"path"`
}

func sheetPeriod(r *http.Request) (year, month int, ok bool) {
	year, yearErr := strconv.Atoi(chi.URLParam(r, "year"))
	month, monthErr := strconv.Atoi(chi.URLParam(r, "month"))
	return year, month, yearErr == nil && monthErr == nil
}

// PaySheet implements SheetHandler
func (h *sheetHandlerImpl) PaySheet(w http.ResponseWriter, r *http.Request) {
	year, month, ok := sheetPeriod(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	path, err := h.sheetService.PaySheet(r.Context(), year, month, r.URL.Query().Get("branch"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay sheet generated", sheetResponse{Path: path})
}

// AllEmployeesSheet implements SheetHandler
func (h *sheetHandlerImpl) AllEmployeesSheet(w http.ResponseWriter, r *http.Request) {
	year, month, ok := sheetPeriod(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	path, err := h.sheetService.AllEmployeesSheet(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All-employees sheet generated", sheetResponse{Path: path})
}

// GrandTotalsSheet implements SheetHandler
func (h *sheetHandlerImpl) GrandTotalsSheet(w http.ResponseWriter, r *http.Request) {
	year, month, ok := sheetPeriod(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	path, err := h.sheetService.GrandTotalsSheet(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Grand-totals sheet generated", sheetResponse{Path: path})
}

// BranchPaySheet implements SheetHandler
func (h *sheetHandlerImpl) BranchPaySheet(w http.ResponseWriter, r *http.Request) {
	year, month, ok := sheetPeriod(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	path, err := h.sheetService.BranchPaySheet(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Branch pay sheet generated", sheetResponse{Path: path})
}
