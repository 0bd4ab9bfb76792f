package payroll

import (
	"time"
)

// StandardDayHours is the contracted working day. Hours above it earn
// overtime at the employee's hour price, hours below it are billed back as
// delay at the same rate.
const StandardDayHours = 9.0

// PenaltyDay10 and PenaltyDay20 are the calendar days carrying a fixed
// deduction when no complete attendance pair is recorded.
const (
	PenaltyDay10 = 10
	PenaltyDay20 = 20
)

// Breakdown is one employee's payroll for one billing period. It is derived
// from the employee configuration plus the month's attendance sheet and is
// only persisted when the period is committed.
type Breakdown struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Branch       string `json:"branch"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`

	DaysInMonth   int     `json:"days_in_month"`
	DaysWorked    int     `json:"days_worked"`
	AbsenceDays   int     `json:"absence_days"`
	OvertimeHours float64 `json:"overtime_hours"`
	DelayHours    float64 `json:"delay_hours"`

	BasicWage          float64 `json:"basic_wage"`
	Additional         float64 `json:"additional"`
	DelayDeduction     float64 `json:"delay_deduction"`
	AbsenceDeduction   float64 `json:"absence_deduction"`
	LoanInstallment    float64 `json:"loan_installment"`
	InsuranceDeduction float64 `json:"insurance_deduction"`
	ExtraDeduction     float64 `json:"extra_deduction"`
	Deduction10Amount  float64 `json:"deduction10_amount"`
	Deduction20Amount  float64 `json:"deduction_day20_amount"`

	NetSalary   float64 `json:"net_salary"`
	DailySalary float64 `json:"daily_salary"`

	// Loan after-state the commit applies. Previews carry it but never
	// write it back.
	LoanRemainingAfter  *float64 `json:"loan_remaining_after,omitempty"`
	LoanMonthsPaidAfter int      `json:"loan_months_paid_after"`
}

// Commit is the persisted marker and snapshot of a committed period,
// unique per (employee, year, month).
type Commit struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Breakdown   Breakdown `json:"breakdown"`
	CommittedAt time.Time `json:"committed_at"`
}
