package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/payledger/payledger-backend-go/internal/domain/employee"
	"github.com/payledger/payledger-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, name, job, branch, hour_price, daily_wage, extra_deduction,
	insurance_deduction, loans_deduction, loans_months, additional,
	deduction10, deduction_day20, loan_remaining, loan_months_paid,
	position, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Job,
		&e.Branch,
		&e.HourPrice,
		&e.DailyWage,
		&e.ExtraDeduction,
		&e.InsuranceDeduction,
		&e.LoansDeduction,
		&e.LoansMonths,
		&e.Additional,
		&e.Deduction10,
		&e.DeductionDay20,
		&e.LoanRemaining,
		&e.LoanMonthsPaid,
		&e.Position,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, job, branch, hour_price, daily_wage, extra_deduction,
			insurance_deduction, loans_deduction, loans_months, additional,
			deduction10, deduction_day20, loan_remaining, loan_months_paid,
			position, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			COALESCE((SELECT MAX(position) + 1 FROM employees), 1),
			NOW(), NOW()
		)
		RETURNING ` + employeeColumns

	result, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(),
		emp.Name,
		emp.Job,
		emp.Branch,
		emp.HourPrice,
		emp.DailyWage,
		emp.ExtraDeduction,
		emp.InsuranceDeduction,
		emp.LoansDeduction,
		emp.LoansMonths,
		emp.Additional,
		emp.Deduction10,
		emp.DeductionDay20,
		emp.LoanRemaining,
		emp.LoanMonthsPaid,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	result, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// GetByNameAndBranch implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByNameAndBranch(ctx context.Context, name, branch string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE name = $1 AND branch = $2`

	result, err := scanEmployee(q.QueryRow(ctx, query, name, branch))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by name and branch: %w", err)
	}

	return result, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, branch string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []any{}
	if branch != "" {
		query += ` WHERE branch = $1`
		args = append(args, branch)
	}
	query += ` ORDER BY position ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, job = $3, branch = $4, hour_price = $5, daily_wage = $6,
			extra_deduction = $7, insurance_deduction = $8, loans_deduction = $9,
			loans_months = $10, additional = $11, deduction10 = $12,
			deduction_day20 = $13, loan_remaining = $14, loan_months_paid = $15,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.Job,
		emp.Branch,
		emp.HourPrice,
		emp.DailyWage,
		emp.ExtraDeduction,
		emp.InsuranceDeduction,
		emp.LoansDeduction,
		emp.LoansMonths,
		emp.Additional,
		emp.Deduction10,
		emp.DeductionDay20,
		emp.LoanRemaining,
		emp.LoanMonthsPaid,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdateLoanState implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateLoanState(ctx context.Context, id string, loanRemaining *float64, loanMonthsPaid int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET loan_remaining = $2, loan_months_paid = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, loanRemaining, loanMonthsPaid)
	if err != nil {
		return fmt.Errorf("failed to update loan state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ReplaceAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ReplaceAll(ctx context.Context, employees []employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}

	query := `
		INSERT INTO employees (
			id, name, job, branch, hour_price, daily_wage, extra_deduction,
			insurance_deduction, loans_deduction, loans_months, additional,
			deduction10, deduction_day20, loan_remaining, loan_months_paid,
			position, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
	`

	for i, emp := range employees {
		id := emp.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := q.Exec(ctx, query,
			id,
			emp.Name,
			emp.Job,
			emp.Branch,
			emp.HourPrice,
			emp.DailyWage,
			emp.ExtraDeduction,
			emp.InsuranceDeduction,
			emp.LoansDeduction,
			emp.LoansMonths,
			emp.Additional,
			emp.Deduction10,
			emp.DeductionDay20,
			emp.LoanRemaining,
			emp.LoanMonthsPaid,
			i+1,
		)
		if err != nil {
			return fmt.Errorf("failed to insert employee %q: %w", emp.Name, err)
		}
	}

	return nil
}
