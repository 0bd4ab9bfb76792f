package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/payledger/payledger-backend-go/internal/domain/payroll"
	"github.com/payledger/payledger-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// GetCommit implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetCommit(ctx context.Context, employeeID string, year, month int) (*payroll.Commit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, month, breakdown, committed_at
		FROM payroll_commits
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`

	var c payroll.Commit
	var raw []byte
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(
		&c.ID,
		&c.EmployeeID,
		&c.Year,
		&c.Month,
		&raw,
		&c.CommittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrCommitNotFound
		}
		return nil, fmt.Errorf("failed to get payroll commit: %w", err)
	}

	if err := json.Unmarshal(raw, &c.Breakdown); err != nil {
		return nil, fmt.Errorf("failed to decode payroll breakdown: %w", err)
	}

	return &c, nil
}

// ListCommits implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListCommits(ctx context.Context, year, month int) ([]payroll.Commit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, month, breakdown, committed_at
		FROM payroll_commits
		WHERE year = $1 AND month = $2
		ORDER BY committed_at ASC
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll commits: %w", err)
	}
	defer rows.Close()

	var commits []payroll.Commit
	for rows.Next() {
		var c payroll.Commit
		var raw []byte
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.Year, &c.Month, &raw, &c.CommittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll commit: %w", err)
		}
		if err := json.Unmarshal(raw, &c.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to decode payroll breakdown: %w", err)
		}
		commits = append(commits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll commits: %w", err)
	}

	return commits, nil
}

// SaveCommit implements payroll.PayrollRepository. The unique constraint on
// (employee_id, year, month) is the once-per-period guard.
func (r *payrollRepositoryImpl) SaveCommit(ctx context.Context, commit *payroll.Commit) error {
	q := GetQuerier(ctx, r.db)

	if commit.ID == "" {
		commit.ID = uuid.NewString()
	}

	raw, err := json.Marshal(commit.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to encode payroll breakdown: %w", err)
	}

	query := `
		INSERT INTO payroll_commits (id, employee_id, year, month, breakdown, committed_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING committed_at
	`

	err = q.QueryRow(ctx, query, commit.ID, commit.EmployeeID, commit.Year, commit.Month, raw).
		Scan(&commit.CommittedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.ErrPeriodAlreadyCommitted
		}
		return fmt.Errorf("failed to save payroll commit: %w", err)
	}

	return nil
}
