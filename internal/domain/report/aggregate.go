// Package report folds per-employee payroll breakdowns into branch totals,
// daily totals, a monthly review list and company-wide grand totals.
package report

import (
	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/domain/employee"
	"github.com/payledger/payledger-backend-go/internal/domain/payroll"
)

// Daily-totals bucketing modes. The attendance-day mode buckets an
// employee's daily salary under each worked day of the payroll month; the
// calendar-day mode reproduces the legacy behaviour of piling everything
// under the day-of-month the report was run on.
const (
	BucketAttendanceDay = "attendance_day"
	BucketCalendarDay   = "calendar_day"
)

type Options struct {
	DailyBucketMode string
	// Today is the day-of-month used by the calendar-day mode. Ignored by
	// the attendance-day mode.
	Today int
}

// Entry is one employee's input to an aggregation pass, in registry order.
type Entry struct {
	Employee  employee.Employee
	Breakdown payroll.Breakdown
	Days      map[int]attendance.DayRecord
}

// Row is one employee's aggregated output. BranchSeq is the 1-based
// counter within the employee's branch, recomputed fresh each pass in
// registry iteration order.
type Row struct {
	Employee  employee.Employee
	Breakdown payroll.Breakdown
	BranchSeq int
}

type BranchTotals struct {
	Branch        string
	EmployeeCount int
	DailyTotal    float64
	MonthlyTotal  float64
}

type DailyTotal struct {
	Branch string
	Day    int
	Total  float64
}

type ReviewItem struct {
	EmployeeName string
	Branch       string
	NetSalary    float64
}

type Summary struct {
	Rows          []Row
	BranchTotals  []BranchTotals
	DailyTotals   []DailyTotal
	MonthlyReview []ReviewItem
	GrandNetTotal float64
}

// Aggregate folds the ordered entries into a summary. An empty input yields
// empty aggregates. Branches appear in the order first encountered; daily
// totals are ordered by branch encounter order, then day number.
func Aggregate(entries []Entry, opts Options) Summary {
	s := Summary{
		Rows:          make([]Row, 0, len(entries)),
		BranchTotals:  []BranchTotals{},
		DailyTotals:   []DailyTotal{},
		MonthlyReview: make([]ReviewItem, 0, len(entries)),
	}

	branchIdx := map[string]int{}
	branchCounters := map[string]int{}
	daily := map[string]map[int]float64{}

	for _, e := range entries {
		branch := e.Employee.Branch
		if _, ok := branchIdx[branch]; !ok {
			branchIdx[branch] = len(s.BranchTotals)
			s.BranchTotals = append(s.BranchTotals, BranchTotals{Branch: branch})
			daily[branch] = map[int]float64{}
		}

		branchCounters[branch]++
		s.Rows = append(s.Rows, Row{
			Employee:  e.Employee,
			Breakdown: e.Breakdown,
			BranchSeq: branchCounters[branch],
		})

		bt := &s.BranchTotals[branchIdx[branch]]
		bt.EmployeeCount++
		bt.DailyTotal += e.Breakdown.DailySalary
		bt.MonthlyTotal += e.Breakdown.NetSalary

		switch opts.DailyBucketMode {
		case BucketCalendarDay:
			daily[branch][opts.Today] += e.Breakdown.DailySalary
		default:
			for d := 1; d <= e.Breakdown.DaysInMonth; d++ {
				if rec, ok := e.Days[d]; ok && rec.Complete() {
					daily[branch][d] += e.Breakdown.DailySalary
				}
			}
		}

		s.MonthlyReview = append(s.MonthlyReview, ReviewItem{
			EmployeeName: e.Employee.Name,
			Branch:       branch,
			NetSalary:    e.Breakdown.NetSalary,
		})
		s.GrandNetTotal += e.Breakdown.NetSalary
	}

	for _, bt := range s.BranchTotals {
		for d := 1; d <= 31; d++ {
			if total, ok := daily[bt.Branch][d]; ok {
				s.DailyTotals = append(s.DailyTotals, DailyTotal{
					Branch: bt.Branch,
					Day:    d,
					Total:  total,
				})
			}
		}
	}

	return s
}
