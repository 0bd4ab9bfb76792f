package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/domain/employee"
	"github.com/payledger/payledger-backend-go/internal/domain/payroll"
	"github.com/payledger/payledger-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	bucketMode     string
	now            func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	bucketMode string,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		bucketMode:     bucketMode,
		now:            time.Now,
	}
}

// entries builds the aggregation input for a period: every employee in
// registry order with its attendance sheet and a payroll preview.
func (s *ReportServiceImpl) entries(ctx context.Context, year, month int, branch string) ([]report.Entry, error) {
	employees, err := s.employeeRepo.List(ctx, branch)
	if err != nil {
		return nil, err
	}

	entries := make([]report.Entry, 0, len(employees))
	for _, emp := range employees {
		days := map[int]attendance.DayRecord{}
		m, err := s.attendanceRepo.GetMonth(ctx, emp.Name, year, month)
		if err != nil && !errors.Is(err, attendance.ErrMonthNotFound) {
			return nil, fmt.Errorf("attendance for %q: %w", emp.Name, err)
		}
		if m != nil {
			days = m.Days
		}
		entries = append(entries, report.Entry{
			Employee:  emp,
			Breakdown: payroll.ComputeMonthly(emp, days, year, month),
			Days:      days,
		})
	}

	return entries, nil
}

// Summarize implements report.ReportService.
func (s *ReportServiceImpl) Summarize(ctx context.Context, year, month int, branch string) (report.Summary, error) {
	entries, err := s.entries(ctx, year, month, branch)
	if err != nil {
		return report.Summary{}, err
	}

	return report.Aggregate(entries, report.Options{
		DailyBucketMode: s.bucketMode,
		Today:           s.now().Day(),
	}), nil
}

// MonthlySummary implements report.ReportService.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, year, month int, branch string) (report.SummaryResponse, error) {
	summary, err := s.Summarize(ctx, year, month, branch)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	return report.ToSummaryResponse(year, month, summary), nil
}
