package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/domain/employee"
	"github.com/payledger/payledger-backend-go/internal/domain/payroll"
	"github.com/payledger/payledger-backend-go/internal/pkg/database"
	"github.com/payledger/payledger-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	tx             database.TxManager
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewPayrollService(
	tx database.TxManager,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:             tx,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

func validatePeriod(year, month int) error {
	if !validator.IsValidYear(year) || !validator.IsValidMonth(month) {
		return payroll.ErrInvalidPeriod
	}
	return nil
}

func (s *PayrollServiceImpl) monthDays(ctx context.Context, employeeName string, year, month int) (map[int]attendance.DayRecord, error) {
	m, err := s.attendanceRepo.GetMonth(ctx, employeeName, year, month)
	if err != nil {
		if errors.Is(err, attendance.ErrMonthNotFound) {
			return map[int]attendance.DayRecord{}, nil
		}
		return nil, err
	}
	return m.Days, nil
}

// PreviewMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) PreviewMonth(ctx context.Context, year, month int, branch string) ([]payroll.Breakdown, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, branch)
	if err != nil {
		return nil, err
	}

	breakdowns := make([]payroll.Breakdown, 0, len(employees))
	for _, emp := range employees {
		days, err := s.monthDays(ctx, emp.Name, year, month)
		if err != nil {
			return nil, fmt.Errorf("attendance for %q: %w", emp.Name, err)
		}
		breakdowns = append(breakdowns, payroll.ComputeMonthly(emp, days, year, month))
	}

	return breakdowns, nil
}

// PreviewEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) PreviewEmployee(ctx context.Context, employeeID string, year, month int) (payroll.Breakdown, error) {
	if err := validatePeriod(year, month); err != nil {
		return payroll.Breakdown{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Breakdown{}, err
	}

	days, err := s.monthDays(ctx, emp.Name, year, month)
	if err != nil {
		return payroll.Breakdown{}, err
	}

	return payroll.ComputeMonthly(emp, days, year, month), nil
}

// CommitPeriod implements payroll.PayrollService. The whole commit runs in
// one transaction: snapshot insert and loan-state advance land together or
// not at all. A period already committed returns the stored commit, so
// repeated invocations are safe.
func (s *PayrollServiceImpl) CommitPeriod(ctx context.Context, employeeID string, year, month int) (payroll.Commit, error) {
	if err := validatePeriod(year, month); err != nil {
		return payroll.Commit{}, err
	}

	var result payroll.Commit
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.payrollRepo.GetCommit(ctx, employeeID, year, month)
		if err == nil {
			result = *existing
			return nil
		}
		if !errors.Is(err, payroll.ErrCommitNotFound) {
			return err
		}

		emp, err := s.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}

		days, err := s.monthDays(ctx, emp.Name, year, month)
		if err != nil {
			return err
		}

		breakdown := payroll.ComputeMonthly(emp, days, year, month)

		commit := payroll.Commit{
			EmployeeID: emp.ID,
			Year:       year,
			Month:      month,
			Breakdown:  breakdown,
		}
		if err := s.payrollRepo.SaveCommit(ctx, &commit); err != nil {
			return err
		}

		if err := s.employeeRepo.UpdateLoanState(ctx, emp.ID, breakdown.LoanRemainingAfter, breakdown.LoanMonthsPaidAfter); err != nil {
			return err
		}

		result = commit
		return nil
	})
	if err != nil {
		return payroll.Commit{}, err
	}

	return result, nil
}

// CommitAll implements payroll.PayrollService.
func (s *PayrollServiceImpl) CommitAll(ctx context.Context, year, month int) ([]payroll.Commit, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	commits := make([]payroll.Commit, 0, len(employees))
	for _, emp := range employees {
		commit, err := s.CommitPeriod(ctx, emp.ID, year, month)
		if err != nil {
			return nil, fmt.Errorf("commit period for %q: %w", emp.Name, err)
		}
		commits = append(commits, commit)
	}

	return commits, nil
}

// GetCommit implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetCommit(ctx context.Context, employeeID string, year, month int) (payroll.Commit, error) {
	commit, err := s.payrollRepo.GetCommit(ctx, employeeID, year, month)
	if err != nil {
		return payroll.Commit{}, err
	}
	return *commit, nil
}

// ListCommits implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListCommits(ctx context.Context, year, month int) ([]payroll.Commit, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	return s.payrollRepo.ListCommits(ctx, year, month)
}
