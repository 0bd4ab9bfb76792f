package payroll

import "errors"

var (
	ErrCommitNotFound         = errors.New("payroll commit not found")
	ErrPeriodAlreadyCommitted = errors.New("payroll period already committed")
	ErrInvalidPeriod          = errors.New("invalid payroll period")
)
