package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/payledger/payledger-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func fromRequest(req employee.SaveEmployeeRequest) employee.Employee {
	return employee.Employee{
		Name:               req.Name,
		Job:                req.Job,
		Branch:             req.Branch,
		HourPrice:          req.HourPrice,
		DailyWage:          req.DailyWage,
		ExtraDeduction:     req.ExtraDeduction,
		InsuranceDeduction: req.InsuranceDeduction,
		LoansDeduction:     req.LoansDeduction,
		LoansMonths:        req.LoansMonths,
		Additional:         req.Additional,
		Deduction10:        *req.Deduction10,
		DeductionDay20:     *req.DeductionDay20,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.SaveEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	req.ApplyDefaults()

	if _, err := s.employeeRepo.GetByNameAndBranch(ctx, req.Name, req.Branch); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("check existing employee: %w", err)
	}

	emp := fromRequest(req)
	if emp.LoansDeduction > 0 {
		remaining := emp.LoansDeduction
		emp.LoanRemaining = &remaining
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Update implements employee.EmployeeService. Loan state carries over
// unchanged unless the principal changed, which starts a fresh loan.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.SaveEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	req.ApplyDefaults()

	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := fromRequest(req)
	emp.ID = existing.ID
	emp.Position = existing.Position

	if req.LoansDeduction != existing.LoansDeduction {
		emp.LoanMonthsPaid = 0
		emp.LoanRemaining = nil
		if req.LoansDeduction > 0 {
			remaining := req.LoansDeduction
			emp.LoanRemaining = &remaining
		}
	} else {
		emp.LoanRemaining = existing.LoanRemaining
		emp.LoanMonthsPaid = existing.LoanMonthsPaid
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, branch string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, branch)
	if err != nil {
		return nil, err
	}
	return employee.ToResponses(employees), nil
}

// Delete implements employee.EmployeeService. Attendance sheets are keyed
// by name and deliberately survive the deletion.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// ReduceLoanTerm implements employee.EmployeeService. The new term must be
// positive and strictly shorter than the current one.
func (s *EmployeeServiceImpl) ReduceLoanTerm(ctx context.Context, id string, req employee.ReduceLoanTermRequest) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.LoansMonths <= 0 || req.LoansMonths >= emp.LoansMonths {
		return employee.EmployeeResponse{}, employee.ErrInvalidLoanTerm
	}

	emp.LoansMonths = req.LoansMonths
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}
