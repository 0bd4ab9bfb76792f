package payroll

import (
	"context"
)

type PayrollService interface {
	// PreviewMonth computes breakdowns for every employee (optionally one
	// branch) without touching loan state.
	PreviewMonth(ctx context.Context, year, month int, branch string) ([]Breakdown, error)

	// PreviewEmployee computes one employee's breakdown without touching
	// loan state.
	PreviewEmployee(ctx context.Context, employeeID string, year, month int) (Breakdown, error)

	// CommitPeriod persists the breakdown and advances loan state, exactly
	// once per (employee, period). Repeat calls return the stored commit.
	CommitPeriod(ctx context.Context, employeeID string, year, month int) (Commit, error)

	// CommitAll commits the period for every employee in the registry.
	CommitAll(ctx context.Context, year, month int) ([]Commit, error)

	GetCommit(ctx context.Context, employeeID string, year, month int) (Commit, error)
	ListCommits(ctx context.Context, year, month int) ([]Commit, error)
}
