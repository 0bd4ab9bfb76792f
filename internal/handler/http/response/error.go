package response

import (
	"errors"
	"net/http"

	"github.com/payledger/payledger-backend-go/internal/domain/dataset"
	"github.com/payledger/payledger-backend-go/internal/domain/employee"
	"github.com/payledger/payledger-backend-go/internal/domain/payroll"
	"github.com/payledger/payledger-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeAlreadyExists):
		Conflict(w, "Employee already exists in this branch")
	case errors.Is(err, employee.ErrInvalidLoanTerm):
		BadRequest(w, "Loan term must be positive and shorter than the current term", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrCommitNotFound):
		NotFound(w, "Payroll commit not found")
	case errors.Is(err, payroll.ErrPeriodAlreadyCommitted):
		Conflict(w, "Payroll period already committed")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Dataset domain errors
	case errors.Is(err, dataset.ErrMalformedDocument):
		BadRequest(w, "Malformed dataset document", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
