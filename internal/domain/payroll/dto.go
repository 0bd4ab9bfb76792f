package payroll

import (
	"time"

	"github.com/payledger/payledger-backend-go/internal/pkg/money"
)

// BreakdownResponse is the presentation shape of a breakdown: every
// monetary amount rounded to two decimals, hour tallies left as computed.
type BreakdownResponse struct {
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
}

func ToBreakdownResponse(b Breakdown) BreakdownResponse {
	return BreakdownResponse{
		EmployeeID:         b.EmployeeID,
		EmployeeName:       b.EmployeeName,
		Branch:             b.Branch,
		Year:               b.Year,
		Month:              b.Month,
		DaysInMonth:        b.DaysInMonth,
		DaysWorked:         b.DaysWorked,
		AbsenceDays:        b.AbsenceDays,
		OvertimeHours:      b.OvertimeHours,
		DelayHours:         b.DelayHours,
		BasicWage:          money.Round2(b.BasicWage),
		Additional:         money.Round2(b.Additional),
		DelayDeduction:     money.Round2(b.DelayDeduction),
		AbsenceDeduction:   money.Round2(b.AbsenceDeduction),
		LoanInstallment:    money.Round2(b.LoanInstallment),
		InsuranceDeduction: money.Round2(b.InsuranceDeduction),
		ExtraDeduction:     money.Round2(b.ExtraDeduction),
		Deduction10Amount:  money.Round2(b.Deduction10Amount),
		Deduction20Amount:  money.Round2(b.Deduction20Amount),
		NetSalary:          money.Round2(b.NetSalary),
		DailySalary:        money.Round2(b.DailySalary),
	}
}

func ToBreakdownResponses(breakdowns []Breakdown) []BreakdownResponse {
	responses := make([]BreakdownResponse, 0, len(breakdowns))
	for _, b := range breakdowns {
		responses = append(responses, ToBreakdownResponse(b))
	}
	return responses
}

type CommitResponse struct {
	ID          string            `json:"id"`
	EmployeeID  string            `json:"employee_id"`
	Year        int               `json:"year"`
	Month       int               `json:"month"`
	Breakdown   BreakdownResponse `json:"breakdown"`
	CommittedAt time.Time         `json:"committed_at"`
}

func ToCommitResponse(c Commit) CommitResponse {
	return CommitResponse{
		ID:          c.ID,
		EmployeeID:  c.EmployeeID,
		Year:        c.Year,
		Month:       c.Month,
		Breakdown:   ToBreakdownResponse(c.Breakdown),
		CommittedAt: c.CommittedAt,
	}
}

func ToCommitResponses(commits []Commit) []CommitResponse {
	responses := make([]CommitResponse, 0, len(commits))
	for _, c := range commits {
		responses = append(responses, ToCommitResponse(c))
	}
	return responses
}
