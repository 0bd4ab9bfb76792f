package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/payledger/payledger-backend-go/internal/domain/payroll"
)

// RegisterPayrollAutoCommit schedules a daily check that commits the
// previous billing period for every employee once the month has rolled
// over. Commits are idempotent, so the repeated daily runs after the first
// are no-ops.
func RegisterPayrollAutoCommit(s *Scheduler, payrollService payroll.PayrollService) {
	s.AddJob("payroll-auto-commit", 24*time.Hour, func(ctx context.Context) error {
		// Last day of the previous month; AddDate on day 29-31 can skip a
		// short month, anchoring to day 1 cannot.
		now := time.Now()
		prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
		year, month := prev.Year(), int(prev.Month())

		commits, err := payrollService.CommitAll(ctx, year, month)
		if err != nil {
			return err
		}

		slog.Info("Payroll period committed", "year", year, "month", month, "employees", len(commits))
		return nil
	})
}
