package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	SetDay(w http.ResponseWriter, r *http.Request)
	ClearDay(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func periodParams(r *http.Request) (name string, year, month int, ok bool) {
	name = chi.URLParam(r, "name")
	year, yearErr := strconv.Atoi(chi.URLParam(r, "year"))
	month, monthErr := strconv.Atoi(chi.URLParam(r, "month"))
	return name, year, month, yearErr == nil && monthErr == nil
}

// GetMonth implements AttendanceHandler
func (h *attendanceHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	name, year, month, ok := periodParams(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}

	resp, err := h.attendanceService.GetMonth(r.Context(), name, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SetDay implements AttendanceHandler
func (h *attendanceHandlerImpl) SetDay(w http.ResponseWriter, r *http.Request) {
	name, year, month, ok := periodParams(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		response.BadRequest(w, "Day must be a number", nil)
		return
	}

	var req attendance.SetDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.attendanceService.SetDay(r.Context(), name, year, month, day, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance day saved", resp)
}

// ClearDay implements AttendanceHandler
func (h *attendanceHandlerImpl) ClearDay(w http.ResponseWriter, r *http.Request) {
	name, year, month, ok := periodParams(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers", nil)
		return
	}
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		response.BadRequest(w, "Day must be a number", nil)
		return
	}

	resp, err := h.attendanceService.ClearDay(r.Context(), name, year, month, day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance day cleared", resp)
}
