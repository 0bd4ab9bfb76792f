package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("an employee with this name already exists in the branch")
	ErrInvalidLoanTerm       = errors.New("loan term must be greater than zero and shorter than the current term")
)
