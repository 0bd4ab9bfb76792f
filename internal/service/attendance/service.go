package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

func validatePeriod(employeeName string, year, month int) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "is required"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a four-digit year"})
	}
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GetMonth implements attendance.AttendanceService. A sheet with no stored
// row is an empty month, not an error.
func (s *AttendanceServiceImpl) GetMonth(ctx context.Context, employeeName string, year, month int) (attendance.MonthResponse, error) {
	if err := validatePeriod(employeeName, year, month); err != nil {
		return attendance.MonthResponse{}, err
	}

	m, err := s.attendanceRepo.GetMonth(ctx, employeeName, year, month)
	if err != nil {
		if errors.Is(err, attendance.ErrMonthNotFound) {
			return attendance.ToMonthResponse(attendance.Month{
				EmployeeName: employeeName,
				Year:         year,
				Month:        month,
			}), nil
		}
		return attendance.MonthResponse{}, err
	}

	return attendance.ToMonthResponse(*m), nil
}

// SetDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SetDay(ctx context.Context, employeeName string, year, month, day int, req attendance.SetDayRequest) (attendance.MonthResponse, error) {
	if err := validatePeriod(employeeName, year, month); err != nil {
		return attendance.MonthResponse{}, err
	}
	if !validator.IsValidDayOfMonth(day, year, month) {
		return attendance.MonthResponse{}, validator.ValidationErrors{{
			Field:   "day",
			Message: fmt.Sprintf("must be between 1 and %d", validator.DaysInMonth(year, month)),
		}}
	}
	if err := req.Validate(); err != nil {
		return attendance.MonthResponse{}, err
	}

	var record attendance.DayRecord
	if req.ClockIn != nil {
		record.ClockIn = *req.ClockIn
	}
	if req.ClockOut != nil {
		record.ClockOut = *req.ClockOut
	}

	if err := s.attendanceRepo.SetDay(ctx, employeeName, year, month, day, record); err != nil {
		return attendance.MonthResponse{}, err
	}

	return s.GetMonth(ctx, employeeName, year, month)
}

// ClearDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClearDay(ctx context.Context, employeeName string, year, month, day int) (attendance.MonthResponse, error) {
	if err := validatePeriod(employeeName, year, month); err != nil {
		return attendance.MonthResponse{}, err
	}
	if !validator.IsValidDayOfMonth(day, year, month) {
		return attendance.MonthResponse{}, validator.ValidationErrors{{
			Field:   "day",
			Message: fmt.Sprintf("must be between 1 and %d", validator.DaysInMonth(year, month)),
		}}
	}

	if err := s.attendanceRepo.ClearDay(ctx, employeeName, year, month, day); err != nil {
		return attendance.MonthResponse{}, err
	}

	return s.GetMonth(ctx, employeeName, year, month)
}
