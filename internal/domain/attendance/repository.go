package attendance

import "context"

// AttendanceRepository persists per-employee month sheets. Months are keyed
// by employee name, not id, so sheets survive an employee row being deleted.
type AttendanceRepository interface {
	GetMonth(ctx context.Context, employeeName string, year, month int) (*Month, error)
	SetDay(ctx context.Context, employeeName string, year, month, day int, record DayRecord) error
	ClearDay(ctx context.Context, employeeName string, year, month, day int) error
	ListAll(ctx context.Context) ([]Month, error)
	ReplaceAll(ctx context.Context, months []Month) error
}
