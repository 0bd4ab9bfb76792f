package report

import (
	"context"
)

type ReportService interface {
	// MonthlySummary aggregates payroll previews for the period, optionally
	// filtered to one branch, in presentation shape.
	MonthlySummary(ctx context.Context, year, month int, branch string) (SummaryResponse, error)

	// Summarize returns the raw aggregates, used by the sheet printer.
	Summarize(ctx context.Context, year, month int, branch string) (Summary, error)
}
