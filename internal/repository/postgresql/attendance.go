package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/pkg/database"
)

// Attendance months are stored one row per (employee_name, year, month) with
// the day cells in a JSONB column, mirroring the keyed-store shape the data
// model comes from. JSONB object keys are strings, so day numbers convert at
// the row boundary.
type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func encodeDays(days map[int]attendance.DayRecord) ([]byte, error) {
	keyed := make(map[string]attendance.DayRecord, len(days))
	for day, rec := range days {
		keyed[strconv.Itoa(day)] = rec
	}
	return json.Marshal(keyed)
}

func decodeDays(raw []byte) (map[int]attendance.DayRecord, error) {
	var keyed map[string]attendance.DayRecord
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil, err
	}
	days := make(map[int]attendance.DayRecord, len(keyed))
	for key, rec := range keyed {
		day, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("bad day key %q: %w", key, err)
		}
		days[day] = rec
	}
	return days, nil
}

// GetMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetMonth(ctx context.Context, employeeName string, year, month int) (*attendance.Month, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_name, year, month, days, updated_at
		FROM attendance_months
		WHERE employee_name = $1 AND year = $2 AND month = $3
	`

	var m attendance.Month
	var raw []byte
	err := q.QueryRow(ctx, query, employeeName, year, month).Scan(
		&m.EmployeeName,
		&m.Year,
		&m.Month,
		&raw,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrMonthNotFound
		}
		return nil, fmt.Errorf("failed to get attendance month: %w", err)
	}

	if m.Days, err = decodeDays(raw); err != nil {
		return nil, fmt.Errorf("failed to decode attendance days: %w", err)
	}

	return &m, nil
}

// SetDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetDay(ctx context.Context, employeeName string, year, month, day int, record attendance.DayRecord) error {
	q := GetQuerier(ctx, r.db)

	cell, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode day record: %w", err)
	}

	query := `
		INSERT INTO attendance_months (employee_name, year, month, days, updated_at)
		VALUES ($1, $2, $3, jsonb_build_object($4::text, $5::jsonb), NOW())
		ON CONFLICT (employee_name, year, month)
		DO UPDATE SET days = attendance_months.days || jsonb_build_object($4::text, $5::jsonb),
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeName, year, month, strconv.Itoa(day), cell); err != nil {
		return fmt.Errorf("failed to set attendance day: %w", err)
	}

	return nil
}

// ClearDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ClearDay(ctx context.Context, employeeName string, year, month, day int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_months
		SET days = days - $4::text, updated_at = NOW()
		WHERE employee_name = $1 AND year = $2 AND month = $3
	`

	if _, err := q.Exec(ctx, query, employeeName, year, month, strconv.Itoa(day)); err != nil {
		return fmt.Errorf("failed to clear attendance day: %w", err)
	}

	return nil
}

// ListAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Month, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_name, year, month, days, updated_at
		FROM attendance_months
		ORDER BY employee_name, year, month
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance months: %w", err)
	}
	defer rows.Close()

	var months []attendance.Month
	for rows.Next() {
		var m attendance.Month
		var raw []byte
		if err := rows.Scan(&m.EmployeeName, &m.Year, &m.Month, &raw, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance month: %w", err)
		}
		if m.Days, err = decodeDays(raw); err != nil {
			return nil, fmt.Errorf("failed to decode attendance days: %w", err)
		}
		months = append(months, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance months: %w", err)
	}

	return months, nil
}

// ReplaceAll implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ReplaceAll(ctx context.Context, months []attendance.Month) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_months`); err != nil {
		return fmt.Errorf("failed to clear attendance months: %w", err)
	}

	query := `
		INSERT INTO attendance_months (employee_name, year, month, days, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	for _, m := range months {
		raw, err := encodeDays(m.Days)
		if err != nil {
			return fmt.Errorf("failed to encode attendance days: %w", err)
		}
		if _, err := q.Exec(ctx, query, m.EmployeeName, m.Year, m.Month, raw); err != nil {
			return fmt.Errorf("failed to insert attendance month for %q: %w", m.EmployeeName, err)
		}
	}

	return nil
}
