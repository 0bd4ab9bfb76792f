package employee

import (
	"github.com/payledger/payledger-backend-go/internal/pkg/validator"
)

// SaveEmployeeRequest carries the full configuration form. Missing numeric
// fields default at this boundary (amounts to 0, loan term to 1, the fixed
// mid-month penalties to 10 and 20) so the payroll engine never sees
// unset input.
type SaveEmployeeRequest struct {
	Name               string   `json:"name"`
	Job                string   `json:"job"`
	Branch             string   `json:"branch"`
	HourPrice          float64  `json:"hour_price"`
	DailyWage          float64  `json:"daily_wage"`
	ExtraDeduction     float64  `json:"extra_deduction"`
	InsuranceDeduction float64  `json:"insurance_deduction"`
	LoansDeduction     float64  `json:"loans_deduction"`
	LoansMonths        int      `json:"loans_months"`
	Additional         float64  `json:"additional"`
	Deduction10        *float64 `json:"deduction10,omitempty"`
	DeductionDay20     *float64 `json:"deduction_day20,omitempty"`
}

func (r *SaveEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Job) {
		errs = append(errs, validator.ValidationError{Field: "job", Message: "is required"})
	}
	if validator.IsEmpty(r.Branch) {
		errs = append(errs, validator.ValidationError{Field: "branch", Message: "is required"})
	}
	if r.LoansMonths < 0 {
		errs = append(errs, validator.ValidationError{Field: "loans_months", Message: "must be non-negative"})
	}
	if r.LoansDeduction < 0 {
		errs = append(errs, validator.ValidationError{Field: "loans_deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyDefaults fills the form-entry defaults the browser app applied.
func (r *SaveEmployeeRequest) ApplyDefaults() {
	if r.LoansMonths < 1 {
		r.LoansMonths = 1
	}
	if r.Deduction10 == nil {
		d := DefaultDeduction10
		r.Deduction10 = &d
	}
	if r.DeductionDay20 == nil {
		d := DefaultDeductionDay20
		r.DeductionDay20 = &d
	}
}

type ReduceLoanTermRequest struct {
	LoansMonths int `json:"loans_months"`
}

type EmployeeResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Job                string   `json:"job"`
	Branch             string   `json:"branch"`
	HourPrice          float64  `json:"hour_price"`
	DailyWage          float64  `json:"daily_wage"`
	ExtraDeduction     float64  `json:"extra_deduction"`
	InsuranceDeduction float64  `json:"insurance_deduction"`
	LoansDeduction     float64  `json:"loans_deduction"`
	LoansMonths        int      `json:"loans_months"`
	Additional         float64  `json:"additional"`
	Deduction10        float64  `json:"deduction10"`
	DeductionDay20     float64  `json:"deduction_day20"`
	LoanRemaining      *float64 `json:"loan_remaining,omitempty"`
	LoanMonthsPaid     int      `json:"loan_months_paid"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                 e.ID,
		Name:               e.Name,
		Job:                e.Job,
		Branch:             e.Branch,
		HourPrice:          e.HourPrice,
		DailyWage:          e.DailyWage,
		ExtraDeduction:     e.ExtraDeduction,
		InsuranceDeduction: e.InsuranceDeduction,
		LoansDeduction:     e.LoansDeduction,
		LoansMonths:        e.LoansMonths,
		Additional:         e.Additional,
		Deduction10:        e.Deduction10,
		DeductionDay20:     e.DeductionDay20,
		LoanRemaining:      e.LoanRemaining,
		LoanMonthsPaid:     e.LoanMonthsPaid,
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	result := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, ToResponse(e))
	}
	return result
}
