package payroll

import (
	"context"
)

type PayrollRepository interface {
	GetCommit(ctx context.Context, employeeID string, year, month int) (*Commit, error)
	ListCommits(ctx context.Context, year, month int) ([]Commit, error)
	SaveCommit(ctx context.Context, commit *Commit) error
}
