package sheet_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payledger/payledger-backend-go/internal/domain/employee"
	"github.com/payledger/payledger-backend-go/internal/domain/payroll"
	"github.com/payledger/payledger-backend-go/internal/domain/report"
	sheetservice "github.com/payledger/payledger-backend-go/internal/service/sheet"
)

type stubReportService struct {
	summary report.Summary
}

func (s *stubReportService) MonthlySummary(ctx context.Context, year, month int, branch string) (report.SummaryResponse, error) {
	return report.ToSummaryResponse(year, month, s.summary), nil
}

func (s *stubReportService) Summarize(ctx context.Context, year, month int, branch string) (report.Summary, error) {
	return s.summary, nil
}

type memStorage struct {
	uploads map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{uploads: map[string][]byte{}}
}

func (m *memStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	m.uploads[path] = data
	return path, nil
}

func (m *memStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.uploads[path])), nil
}

func (m *memStorage) Delete(ctx context.Context, path string) error {
	delete(m.uploads, path)
	return nil
}

func (m *memStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost/files/" + path, nil
}

func (m *memStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := m.uploads[path]
	return ok, nil
}

func sampleSummary() report.Summary {
	return report.Summary{
		Rows: []report.Row{
			{
				Employee: employee.Employee{Name: "amal", Job: "cashier", Branch: "downtown"},
				Breakdown: payroll.Breakdown{
					EmployeeName: "amal", Branch: "downtown",
					DaysInMonth: 30, DaysWorked: 28, AbsenceDays: 2,
					BasicWage: 2800, NetSalary: 2470, DailySalary: 82.33,
				},
				BranchSeq: 1,
			},
		},
		BranchTotals: []report.BranchTotals{
			{Branch: "downtown", EmployeeCount: 1, DailyTotal: 82.33, MonthlyTotal: 2470},
		},
		GrandNetTotal: 2470,
	}
}

func TestPaySheetStoresPDF(t *testing.T) {
	files := newMemStorage()
	svc := sheetservice.NewSheetService(&stubReportService{summary: sampleSummary()}, files)

	path, err := svc.PaySheet(context.Background(), 2025, 9, "")
	require.NoError(t, err)
	assert.Equal(t, "sheets/pay-sheet-2025-09.pdf", path)

	data := files.uploads[path]
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPaySheetBranchFilterNamesFile(t *testing.T) {
	files := newMemStorage()
	svc := sheetservice.NewSheetService(&stubReportService{summary: sampleSummary()}, files)

	path, err := svc.PaySheet(context.Background(), 2025, 9, "downtown")
	require.NoError(t, err)
	assert.Equal(t, "sheets/pay-sheet-2025-09-downtown.pdf", path)
}

func TestAllSheetsRenderForEmptySummary(t *testing.T) {
	files := newMemStorage()
	svc := sheetservice.NewSheetService(&stubReportService{}, files)

	for _, render := range []func() (string, error){
		func() (string, error) { return svc.PaySheet(context.Background(), 2025, 9, "") },
		func() (string, error) { return svc.AllEmployeesSheet(context.Background(), 2025, 9) },
		func() (string, error) { return svc.GrandTotalsSheet(context.Background(), 2025, 9) },
		func() (string, error) { return svc.BranchPaySheet(context.Background(), 2025, 9) },
	} {
		path, err := render()
		require.NoError(t, err)
		assert.NotEmpty(t, files.uploads[path])
	}
}

func TestGrandTotalsSheetStoresPDF(t *testing.T) {
	files := newMemStorage()
	svc := sheetservice.NewSheetService(&stubReportService{summary: sampleSummary()}, files)

	path, err := svc.GrandTotalsSheet(context.Background(), 2025, 9)
	require.NoError(t, err)
	assert.Equal(t, "sheets/grand-totals-2025-09.pdf", path)
	assert.True(t, bytes.HasPrefix(files.uploads[path], []byte("%PDF")))
}

func TestBranchPaySheetOnePagePerBranch(t *testing.T) {
	summary := sampleSummary()
	summary.Rows = append(summary.Rows, report.Row{
		Employee: employee.Employee{Name: "basim", Job: "driver", Branch: "harbor"},
		Breakdown: payroll.Breakdown{
			EmployeeName: "basim", Branch: "harbor",
			DaysInMonth: 30, NetSalary: 1500, DailySalary: 50,
		},
		BranchSeq: 1,
	})
	summary.BranchTotals = append(summary.BranchTotals, report.BranchTotals{
		Branch: "harbor", EmployeeCount: 1, DailyTotal: 50, MonthlyTotal: 1500,
	})

	files := newMemStorage()
	svc := sheetservice.NewSheetService(&stubReportService{summary: summary}, files)

	path, err := svc.BranchPaySheet(context.Background(), 2025, 9)
	require.NoError(t, err)
	assert.NotEmpty(t, files.uploads[path])
}
