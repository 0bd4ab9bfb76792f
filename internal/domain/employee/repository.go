package employee

import (
	"context"
)

// EmployeeRepository defines data access for the employee registry. The
// registry is an ordered list; List returns employees in encounter
// (position) order, which the aggregation layer depends on.
type EmployeeRepository interface {
	// Create inserts a new employee at the end of the registry
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by registry ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByNameAndBranch retrieves an employee by business key
	GetByNameAndBranch(ctx context.Context, name, branch string) (Employee, error)

	// List retrieves all employees in registry order; branch filters when non-empty
	List(ctx context.Context, branch string) ([]Employee, error)

	// Update replaces an employee's configuration and loan state
	Update(ctx context.Context, emp Employee) error

	// UpdateLoanState persists only the mutable amortization fields
	UpdateLoanState(ctx context.Context, id string, loanRemaining *float64, loanMonthsPaid int) error

	// Delete removes the employee; attendance rows are left orphaned
	Delete(ctx context.Context, id string) error

	// ReplaceAll clears the registry and inserts the given employees in order
	ReplaceAll(ctx context.Context, employees []Employee) error
}
