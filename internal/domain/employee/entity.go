package employee

import (
	"time"
)

// Default fixed-day penalty amounts applied when day 10 / day 20 lack a
// complete attendance pair.
const (
	DefaultDeduction10    = 10.0
	DefaultDeductionDay20 = 20.0
)

// Employee is one registry entry. The pair (Name, Branch) is the effective
// business key; ID is assigned on registration. LoanRemaining is nil until
// the first payroll computation touches the loan.
type Employee struct {
	ID                 string
	Name               string
	Job                string
	Branch             string
	HourPrice          float64
	DailyWage          float64
	ExtraDeduction     float64
	InsuranceDeduction float64
	LoansDeduction     float64 // total loan principal
	LoansMonths        int     // amortization term, at least 1
	Additional         float64
	Deduction10        float64
	DeductionDay20     float64
	LoanRemaining      *float64
	LoanMonthsPaid     int
	Position           int // registry encounter order
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MonthlyInstallment is the flat amortization amount per billing period.
func (e Employee) MonthlyInstallment() float64 {
	months := e.LoansMonths
	if months < 1 {
		months = 1
	}
	return e.LoansDeduction / float64(months)
}
