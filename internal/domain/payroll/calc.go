package payroll

import (
	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/domain/employee"
	"github.com/payledger/payledger-backend-go/internal/pkg/validator"
)

// ComputeMonthly derives the payroll breakdown for one employee and one
// billing period. It is pure: the loan after-state is returned on the
// breakdown but the employee record is never touched. Callers that want the
// amortization to stick go through the commit path.
func ComputeMonthly(emp employee.Employee, days map[int]attendance.DayRecord, year, month int) Breakdown {
	b := Breakdown{
		EmployeeID:         emp.ID,
		EmployeeName:       emp.Name,
		Branch:             emp.Branch,
		Year:               year,
		Month:              month,
		DaysInMonth:        validator.DaysInMonth(year, month),
		Additional:         emp.Additional,
		InsuranceDeduction: emp.InsuranceDeduction,
		ExtraDeduction:     emp.ExtraDeduction,
	}

	for d := 1; d <= b.DaysInMonth; d++ {
		rec, ok := days[d]
		if !ok || !rec.Complete() {
			b.AbsenceDays++
			continue
		}
		b.DaysWorked++
		hours := rec.HoursWorked()
		switch {
		case hours > StandardDayHours:
			b.OvertimeHours += hours - StandardDayHours
		case hours < StandardDayHours:
			b.DelayHours += StandardDayHours - hours
		}
	}

	// Fixed-day penalties fire independently of the absence tally: a missed
	// day 10 both counts as an absence and carries the flat deduction.
	if rec, ok := days[PenaltyDay10]; !ok || !rec.Complete() {
		b.Deduction10Amount = emp.Deduction10
	}
	if rec, ok := days[PenaltyDay20]; !ok || !rec.Complete() {
		b.Deduction20Amount = emp.DeductionDay20
	}

	b.BasicWage = emp.DailyWage*float64(b.DaysWorked) + emp.HourPrice*b.OvertimeHours
	b.DelayDeduction = emp.HourPrice * b.DelayHours
	b.AbsenceDeduction = emp.DailyWage * float64(b.AbsenceDays)

	b.LoanInstallment, b.LoanRemainingAfter, b.LoanMonthsPaidAfter = previewLoan(emp)

	b.NetSalary = b.BasicWage + b.Additional -
		b.DelayDeduction - b.AbsenceDeduction - b.LoanInstallment -
		b.InsuranceDeduction - b.ExtraDeduction -
		b.Deduction10Amount - b.Deduction20Amount
	b.DailySalary = b.NetSalary / float64(b.DaysInMonth)

	return b
}

// previewLoan computes this period's installment and the loan state a commit
// would leave behind.
//
// An employee with a positive principal and no initialized balance starts
// amortizing on first computation. While balance remains and the term is not
// exhausted, the installment is the flat per-month share capped by the
// balance. Once the term runs out, any residue is forgiven silently.
func previewLoan(emp employee.Employee) (installment float64, remainingAfter *float64, monthsPaidAfter int) {
	term := emp.LoansMonths
	if term < 1 {
		term = 1
	}

	switch {
	case emp.LoanRemaining == nil && emp.LoansDeduction > 0:
		installment = minFloat(emp.LoansDeduction, emp.LoansDeduction/float64(term))
		after := emp.LoansDeduction - installment
		return installment, &after, 1
	case emp.LoanRemaining != nil && *emp.LoanRemaining > 0 && emp.LoanMonthsPaid < term:
		installment = minFloat(*emp.LoanRemaining, emp.LoansDeduction/float64(term))
		after := *emp.LoanRemaining - installment
		return installment, &after, emp.LoanMonthsPaid + 1
	default:
		return 0, emp.LoanRemaining, emp.LoanMonthsPaid
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
