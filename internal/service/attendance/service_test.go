package attendance_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/pkg/validator"
	attendanceservice "github.com/payledger/payledger-backend-go/internal/service/attendance"
)

type fakeAttendanceRepo struct {
	months map[string]attendance.Month
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{months: map[string]attendance.Month{}}
}

func key(name string, year, month int) string {
	return fmt.Sprintf("%s-%d-%d", name, year, month)
}

func (r *fakeAttendanceRepo) GetMonth(ctx context.Context, employeeName string, year, month int) (*attendance.Month, error) {
	m, ok := r.months[key(employeeName, year, month)]
	if !ok {
		return nil, attendance.ErrMonthNotFound
	}
	return &m, nil
}

func (r *fakeAttendanceRepo) SetDay(ctx context.Context, employeeName string, year, month, day int, record attendance.DayRecord) error {
	k := key(employeeName, year, month)
	m, ok := r.months[k]
	if !ok {
		m = attendance.Month{
			EmployeeName: employeeName,
			Year:         year,
			Month:        month,
			Days:         map[int]attendance.DayRecord{},
		}
	}
	m.Days[day] = record
	r.months[k] = m
	return nil
}

func (r *fakeAttendanceRepo) ClearDay(ctx context.Context, employeeName string, year, month, day int) error {
	if m, ok := r.months[key(employeeName, year, month)]; ok {
		delete(m.Days, day)
	}
	return nil
}

func (r *fakeAttendanceRepo) ListAll(ctx context.Context) ([]attendance.Month, error) {
	var out []attendance.Month
	for _, m := range r.months {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ReplaceAll(ctx context.Context, months []attendance.Month) error {
	r.months = map[string]attendance.Month{}
	for _, m := range months {
		r.months[key(m.EmployeeName, m.Year, m.Month)] = m
	}
	return nil
}

func strPtr(s string) *string { return &s }

func TestGetMonthMissingSheetIsEmpty(t *testing.T) {
	svc := attendanceservice.NewAttendanceService(newFakeAttendanceRepo())

	resp, err := svc.GetMonth(context.Background(), "amal", 2025, 9)
	require.NoError(t, err)

	assert.Equal(t, "amal", resp.EmployeeName)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 9, resp.Month)
	assert.Empty(t, resp.Days)
}

func TestSetDayUpsertsCell(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := attendanceservice.NewAttendanceService(repo)

	resp, err := svc.SetDay(context.Background(), "amal", 2025, 9, 5, attendance.SetDayRequest{
		ClockIn:  strPtr("08:00"),
		ClockOut: strPtr("17:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.Days[5].ClockIn)
	assert.Equal(t, "17:00", resp.Days[5].ClockOut)

	// Partial update: clock-in only.
	resp, err = svc.SetDay(context.Background(), "amal", 2025, 9, 6, attendance.SetDayRequest{
		ClockIn: strPtr("09:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "09:30", resp.Days[6].ClockIn)
	assert.Empty(t, resp.Days[6].ClockOut)
}

func TestSetDayRejectsBadInput(t *testing.T) {
	svc := attendanceservice.NewAttendanceService(newFakeAttendanceRepo())

	var verrs validator.ValidationErrors

	_, err := svc.SetDay(context.Background(), "amal", 2025, 9, 31, attendance.SetDayRequest{})
	require.ErrorAs(t, err, &verrs) // September has 30 days

	_, err = svc.SetDay(context.Background(), "amal", 2025, 9, 5, attendance.SetDayRequest{
		ClockIn: strPtr("25:00"),
	})
	require.ErrorAs(t, err, &verrs)

	_, err = svc.SetDay(context.Background(), "", 2025, 9, 5, attendance.SetDayRequest{})
	require.ErrorAs(t, err, &verrs)

	_, err = svc.SetDay(context.Background(), "amal", 2025, 13, 5, attendance.SetDayRequest{})
	require.ErrorAs(t, err, &verrs)
}

func TestClearDayRemovesCell(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := attendanceservice.NewAttendanceService(repo)

	_, err := svc.SetDay(context.Background(), "amal", 2025, 9, 5, attendance.SetDayRequest{
		ClockIn:  strPtr("08:00"),
		ClockOut: strPtr("17:00"),
	})
	require.NoError(t, err)

	resp, err := svc.ClearDay(context.Background(), "amal", 2025, 9, 5)
	require.NoError(t, err)
	assert.NotContains(t, resp.Days, 5)
}
