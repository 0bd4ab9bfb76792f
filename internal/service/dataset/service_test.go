package dataset_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/domain/dataset"
	"github.com/payledger/payledger-backend-go/internal/domain/employee"
	datasetservice "github.com/payledger/payledger-backend-go/internal/service/dataset"
)

type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (r *memEmployeeRepo) List(ctx context.Context, branch string) ([]employee.Employee, error) {
	return r.employees, nil
}

func (r *memEmployeeRepo) ReplaceAll(ctx context.Context, employees []employee.Employee) error {
	r.employees = nil
	for i, e := range employees {
		e.ID = fmt.Sprintf("emp-%d", i+1)
		r.employees = append(r.employees, e)
	}
	return nil
}

type memAttendanceRepo struct {
	attendance.AttendanceRepository
	months []attendance.Month
}

func (r *memAttendanceRepo) ListAll(ctx context.Context) ([]attendance.Month, error) {
	return r.months, nil
}

func (r *memAttendanceRepo) ReplaceAll(ctx context.Context, months []attendance.Month) error {
	r.months = months
	return nil
}

func TestExportImportRoundTrip(t *testing.T) {
	remaining := 150.0
	empRepo := &memEmployeeRepo{employees: []employee.Employee{
		{
			ID: "emp-1", Name: "amal", Job: "cashier", Branch: "downtown",
			HourPrice: 12.5, DailyWage: 100, LoansDeduction: 300, LoansMonths: 3,
			Deduction10: 10, DeductionDay20: 20,
			LoanRemaining: &remaining, LoanMonthsPaid: 1, Position: 1,
		},
		{
			ID: "emp-2", Name: "basim", Job: "driver", Branch: "harbor",
			DailyWage: 80, LoansMonths: 1,
			Deduction10: 10, DeductionDay20: 20, Position: 2,
		},
	}}
	attRepo := &memAttendanceRepo{months: []attendance.Month{
		{
			EmployeeName: "amal", Year: 2025, Month: 9,
			Days: map[int]attendance.DayRecord{
				1:  {ClockIn: "08:00", ClockOut: "17:00"},
				10: {ClockIn: "09:15"},
			},
		},
	}}

	svc := datasetservice.NewDatasetService(fakeTxManager{}, empRepo, attRepo)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Employees, 2)

	// Wipe and import the exported document back.
	empRepo.employees = nil
	attRepo.months = nil
	require.NoError(t, svc.Import(context.Background(), doc, 2025))

	require.Len(t, empRepo.employees, 2)
	got := empRepo.employees[0]
	assert.Equal(t, "amal", got.Name)
	assert.Equal(t, "cashier", got.Job)
	assert.InDelta(t, 300.0, got.LoansDeduction, 1e-9)
	require.NotNil(t, got.LoanRemaining)
	assert.InDelta(t, 150.0, *got.LoanRemaining, 1e-9)
	assert.Equal(t, 1, got.LoanMonthsPaid)
	assert.Equal(t, 1, got.Position)
	assert.Equal(t, 2, empRepo.employees[1].Position)

	require.Len(t, attRepo.months, 1)
	m := attRepo.months[0]
	assert.Equal(t, "amal", m.EmployeeName)
	assert.Equal(t, 2025, m.Year)
	assert.Equal(t, 9, m.Month)
	assert.Equal(t, "08:00", m.Days[1].ClockIn)
	assert.Equal(t, "17:00", m.Days[1].ClockOut)
	assert.Equal(t, "09:15", m.Days[10].ClockIn)
	assert.Empty(t, m.Days[10].ClockOut)
}

func TestImportLegacyDocumentUsesDefaultYear(t *testing.T) {
	empRepo := &memEmployeeRepo{}
	attRepo := &memAttendanceRepo{}
	svc := datasetservice.NewDatasetService(fakeTxManager{}, empRepo, attRepo)

	doc := dataset.Document{
		Employees: []dataset.EmployeeRecord{
			{Name: "amal", Job: "cashier", Branch: "downtown", DailyWage: 100},
		},
	}
	require.NoError(t, doc.AddMonth(attendance.Month{
		EmployeeName: "amal", Year: 2023, Month: 9,
		Days: map[int]attendance.DayRecord{1: {ClockIn: "08:00", ClockOut: "17:00"}},
	}))

	require.NoError(t, svc.Import(context.Background(), doc, 2025))

	require.Len(t, empRepo.employees, 1)
	// Unset loan term and penalties take the form defaults on import.
	assert.Equal(t, 1, empRepo.employees[0].LoansMonths)
	assert.InDelta(t, employee.DefaultDeduction10, empRepo.employees[0].Deduction10, 1e-9)
	assert.InDelta(t, employee.DefaultDeductionDay20, empRepo.employees[0].DeductionDay20, 1e-9)

	require.Len(t, attRepo.months, 1)
	assert.Equal(t, 2023, attRepo.months[0].Year)
}

func TestImportMalformedDocumentLeavesDataUntouched(t *testing.T) {
	empRepo := &memEmployeeRepo{employees: []employee.Employee{{ID: "emp-1", Name: "amal"}}}
	attRepo := &memAttendanceRepo{}
	svc := datasetservice.NewDatasetService(fakeTxManager{}, empRepo, attRepo)

	// Build a document with a malformed attendance key.
	var malformed dataset.Document
	require.NoError(t, malformed.AddMonth(attendance.Month{
		EmployeeName: "amal", Year: 2025, Month: 9,
		Days: map[int]attendance.DayRecord{1: {ClockIn: "08:00"}},
	}))
	malformed.Attendance["amal"]["bogus"] = malformed.Attendance["amal"]["2025"]

	err := svc.Import(context.Background(), malformed, 2025)
	assert.ErrorIs(t, err, dataset.ErrMalformedDocument)
	assert.Len(t, empRepo.employees, 1)
}
