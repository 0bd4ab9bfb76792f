package employee

import (
	"context"
)

type EmployeeService interface {
	Create(ctx context.Context, req SaveEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req SaveEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, branch string) ([]EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	ReduceLoanTerm(ctx context.Context, id string, req ReduceLoanTermRequest) (EmployeeResponse, error)
}
