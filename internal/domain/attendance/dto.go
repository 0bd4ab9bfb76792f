package attendance

import (
	"github.com/payledger/payledger-backend-go/internal/pkg/validator"
)

type SetDayRequest struct {
	ClockIn  *string `json:"clock_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`
}

func (r *SetDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockIn != nil && *r.ClockIn != "" && !validator.IsValidClockTime(*r.ClockIn) {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be a HH:MM wall-clock time"})
	}
	if r.ClockOut != nil && *r.ClockOut != "" && !validator.IsValidClockTime(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be a HH:MM wall-clock time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthResponse struct {
	EmployeeName string            `json:"employee_name"`
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	Days         map[int]DayRecord `json:"days"`
}

func ToMonthResponse(m Month) MonthResponse {
	days := m.Days
	if days == nil {
		days = map[int]DayRecord{}
	}
	return MonthResponse{
		EmployeeName: m.EmployeeName,
		Year:         m.Year,
		Month:        m.Month,
		Days:         days,
	}
}
