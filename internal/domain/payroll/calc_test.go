package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/domain/employee"
	"github.com/payledger/payledger-backend-go/internal/domain/payroll"
)

func nineHourMonth(daysInMonth int, skip ...int) map[int]attendance.DayRecord {
	skipped := make(map[int]bool, len(skip))
	for _, d := range skip {
		skipped[d] = true
	}
	days := make(map[int]attendance.DayRecord, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		if skipped[d] {
			continue
		}
		days[d] = attendance.DayRecord{ClockIn: "08:00", ClockOut: "17:00"}
	}
	return days
}

func TestComputeMonthlyNineHourDayIsNeutral(t *testing.T) {
	emp := employee.Employee{Name: "amal", Branch: "main", DailyWage: 100, HourPrice: 10}
	days := map[int]attendance.DayRecord{
		5: {ClockIn: "09:00", ClockOut: "18:00"},
	}

	b := payroll.ComputeMonthly(emp, days, 2025, 4)

	assert.Equal(t, 1, b.DaysWorked)
	assert.Zero(t, b.OvertimeHours)
	assert.Zero(t, b.DelayHours)
}

func TestComputeMonthlyOvertimeAndDelay(t *testing.T) {
	emp := employee.Employee{Name: "amal", Branch: "main", DailyWage: 100, HourPrice: 10}
	days := map[int]attendance.DayRecord{
		1: {ClockIn: "08:00", ClockOut: "18:30"}, // 10.5h => 1.5 overtime
		2: {ClockIn: "09:00", ClockOut: "16:00"}, // 7h => 2 delay
	}

	b := payroll.ComputeMonthly(emp, days, 2025, 4)

	assert.Equal(t, 2, b.DaysWorked)
	assert.InDelta(t, 1.5, b.OvertimeHours, 1e-9)
	assert.InDelta(t, 2.0, b.DelayHours, 1e-9)
	assert.InDelta(t, 100*2+10*1.5, b.BasicWage, 1e-9)
	assert.InDelta(t, 10*2.0, b.DelayDeduction, 1e-9)
}

func TestComputeMonthlyIncompletePairCountsAsAbsence(t *testing.T) {
	emp := employee.Employee{Name: "amal", Branch: "main", DailyWage: 100}
	days := map[int]attendance.DayRecord{
		1: {ClockIn: "08:00"},  // no clock-out
		2: {ClockOut: "17:00"}, // no clock-in
	}

	b := payroll.ComputeMonthly(emp, days, 2025, 4)

	assert.Zero(t, b.DaysWorked)
	assert.Equal(t, 30, b.AbsenceDays)
}

func TestComputeMonthlyWorkedPlusAbsenceCoversMonth(t *testing.T) {
	emp := employee.Employee{Name: "amal", Branch: "main", DailyWage: 100}
	for _, tc := range []struct {
		year, month, daysInMonth int
	}{
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
		{2025, 1, 31},
	} {
		b := payroll.ComputeMonthly(emp, nineHourMonth(tc.daysInMonth, 3, 7, 11), tc.year, tc.month)
		assert.Equal(t, tc.daysInMonth, b.DaysWorked+b.AbsenceDays)
		assert.Equal(t, tc.daysInMonth, b.DaysInMonth)
	}
}

func TestComputeMonthlyReferenceScenario(t *testing.T) {
	emp := employee.Employee{
		Name:           "amal",
		Branch:         "main",
		DailyWage:      100,
		HourPrice:      10,
		LoansDeduction: 300,
		LoansMonths:    3,
		Deduction10:    employee.DefaultDeduction10,
		DeductionDay20: employee.DefaultDeductionDay20,
	}
	// September 2025 has 30 days; days 10 and 20 left blank.
	days := nineHourMonth(30, 10, 20)

	b := payroll.ComputeMonthly(emp, days, 2025, 9)

	assert.Equal(t, 28, b.DaysWorked)
	assert.Equal(t, 2, b.AbsenceDays)
	assert.Zero(t, b.OvertimeHours)
	assert.Zero(t, b.DelayHours)
	assert.InDelta(t, 10.0, b.Deduction10Amount, 1e-9)
	assert.InDelta(t, 20.0, b.Deduction20Amount, 1e-9)
	assert.InDelta(t, 2800.0, b.BasicWage, 1e-9)
	assert.InDelta(t, 100.0, b.LoanInstallment, 1e-9)
	assert.InDelta(t, 200.0, b.AbsenceDeduction, 1e-9)
	// 28 worked days paid, two absent days deducted, first loan installment
	// and both fixed penalties applied.
	assert.InDelta(t, 2800-200-100-10-20, b.NetSalary, 1e-9)
	assert.InDelta(t, b.NetSalary/30, b.DailySalary, 1e-9)

	require.NotNil(t, b.LoanRemainingAfter)
	assert.InDelta(t, 200.0, *b.LoanRemainingAfter, 1e-9)
	assert.Equal(t, 1, b.LoanMonthsPaidAfter)
}

func TestComputeMonthlyPenaltyDaysIndependentOfAbsenceTally(t *testing.T) {
	emp := employee.Employee{
		Name:           "amal",
		Branch:         "main",
		DailyWage:      50,
		Deduction10:    employee.DefaultDeduction10,
		DeductionDay20: employee.DefaultDeductionDay20,
	}
	// Day 10 is absent: it counts toward absence AND carries the penalty.
	b := payroll.ComputeMonthly(emp, nineHourMonth(30, 10), 2025, 9)

	assert.Equal(t, 1, b.AbsenceDays)
	assert.InDelta(t, 10.0, b.Deduction10Amount, 1e-9)
	assert.Zero(t, b.Deduction20Amount)
}

func TestComputeMonthlyNetSalaryIdentity(t *testing.T) {
	emp := employee.Employee{
		Name:               "amal",
		Branch:             "main",
		DailyWage:          123.45,
		HourPrice:          7.5,
		Additional:         88,
		InsuranceDeduction: 15,
		ExtraDeduction:     22,
		LoansDeduction:     500,
		LoansMonths:        5,
		Deduction10:        employee.DefaultDeduction10,
		DeductionDay20:     employee.DefaultDeductionDay20,
	}
	days := map[int]attendance.DayRecord{
		1:  {ClockIn: "08:00", ClockOut: "19:30"},
		2:  {ClockIn: "08:00", ClockOut: "14:00"},
		10: {ClockIn: "08:00", ClockOut: "17:00"},
	}

	b := payroll.ComputeMonthly(emp, days, 2025, 6)

	want := b.BasicWage + b.Additional -
		b.DelayDeduction - b.AbsenceDeduction - b.LoanInstallment -
		b.InsuranceDeduction - b.ExtraDeduction -
		b.Deduction10Amount - b.Deduction20Amount
	assert.InDelta(t, want, b.NetSalary, 1e-9)
}

func TestLoanAmortizationSequence(t *testing.T) {
	emp := employee.Employee{
		Name:           "amal",
		Branch:         "main",
		DailyWage:      100,
		LoansDeduction: 300,
		LoansMonths:    3,
	}
	days := nineHourMonth(30)

	// Month 1: loan state initializes and the first installment fires.
	b := payroll.ComputeMonthly(emp, days, 2025, 9)
	assert.InDelta(t, 100.0, b.LoanInstallment, 1e-9)
	require.NotNil(t, b.LoanRemainingAfter)
	assert.InDelta(t, 200.0, *b.LoanRemainingAfter, 1e-9)
	assert.Equal(t, 1, b.LoanMonthsPaidAfter)

	// Month 2 after the commit applied month 1's after-state.
	emp.LoanRemaining = b.LoanRemainingAfter
	emp.LoanMonthsPaid = b.LoanMonthsPaidAfter
	b = payroll.ComputeMonthly(emp, days, 2025, 10)
	assert.InDelta(t, 100.0, b.LoanInstallment, 1e-9)
	assert.InDelta(t, 100.0, *b.LoanRemainingAfter, 1e-9)
	assert.Equal(t, 2, b.LoanMonthsPaidAfter)

	// Month 3 clears the balance.
	emp.LoanRemaining = b.LoanRemainingAfter
	emp.LoanMonthsPaid = b.LoanMonthsPaidAfter
	b = payroll.ComputeMonthly(emp, days, 2025, 11)
	assert.InDelta(t, 100.0, b.LoanInstallment, 1e-9)
	assert.InDelta(t, 0.0, *b.LoanRemainingAfter, 1e-9)
	assert.Equal(t, 3, b.LoanMonthsPaidAfter)

	// Month 4: term exhausted, installment stops, state frozen.
	emp.LoanRemaining = b.LoanRemainingAfter
	emp.LoanMonthsPaid = b.LoanMonthsPaidAfter
	b = payroll.ComputeMonthly(emp, days, 2025, 12)
	assert.Zero(t, b.LoanInstallment)
	assert.InDelta(t, 0.0, *b.LoanRemainingAfter, 1e-9)
	assert.Equal(t, 3, b.LoanMonthsPaidAfter)
}

func TestLoanInstallmentNeverExceedsRemaining(t *testing.T) {
	remaining := 40.0
	emp := employee.Employee{
		Name:           "amal",
		Branch:         "main",
		LoansDeduction: 300,
		LoansMonths:    3,
		LoanRemaining:  &remaining,
		LoanMonthsPaid: 2,
	}

	b := payroll.ComputeMonthly(emp, nineHourMonth(30), 2025, 9)

	assert.InDelta(t, 40.0, b.LoanInstallment, 1e-9)
	require.NotNil(t, b.LoanRemainingAfter)
	assert.InDelta(t, 0.0, *b.LoanRemainingAfter, 1e-9)
}

func TestComputeMonthlyIsPure(t *testing.T) {
	emp := employee.Employee{
		Name:           "amal",
		Branch:         "main",
		LoansDeduction: 300,
		LoansMonths:    3,
	}

	payroll.ComputeMonthly(emp, nineHourMonth(30), 2025, 9)

	assert.Nil(t, emp.LoanRemaining)
	assert.Zero(t, emp.LoanMonthsPaid)
}

func TestComputeMonthlyNoLoan(t *testing.T) {
	emp := employee.Employee{Name: "amal", Branch: "main", DailyWage: 100}

	b := payroll.ComputeMonthly(emp, nineHourMonth(30), 2025, 9)

	assert.Zero(t, b.LoanInstallment)
	assert.Nil(t, b.LoanRemainingAfter)
	assert.Zero(t, b.LoanMonthsPaidAfter)
}
