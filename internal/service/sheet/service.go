// Package sheet renders the printable payroll views as PDF files: the full
// pay sheet, the all-employees sheet, the grand-totals sheet and the
// per-branch pay sheet. Every view consumes payroll previews; printing never
// advances loan state.
package sheet

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/payledger/payledger-backend-go/internal/domain/report"
	"github.com/payledger/payledger-backend-go/internal/pkg/money"
	"github.com/payledger/payledger-backend-go/internal/pkg/storage"
)

type SheetService interface {
	// PaySheet renders the full per-employee column sheet, optionally
	// filtered to one branch. Returns the stored file path.
	PaySheet(ctx context.Context, year, month int, branch string) (string, error)

	// AllEmployeesSheet renders name/job/net rows with a company total.
	AllEmployeesSheet(ctx context.Context, year, month int) (string, error)

	// GrandTotalsSheet renders name/job/branch/net rows with a company total.
	GrandTotalsSheet(ctx context.Context, year, month int) (string, error)

	// BranchPaySheet renders per-employee cards, one branch per page.
	BranchPaySheet(ctx context.Context, year, month int) (string, error)
}

type SheetServiceImpl struct {
	reports report.ReportService
	files   storage.FileStorage
}

func NewSheetService(reports report.ReportService, files storage.FileStorage) SheetService {
	return &SheetServiceImpl{reports: reports, files: files}
}

func (s *SheetServiceImpl) store(ctx context.Context, pdf *gofpdf.Fpdf, name string) (string, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return s.files.Upload(ctx, &buf, name, "application/pdf")
}

// PaySheet implements SheetService.
func (s *SheetServiceImpl) PaySheet(ctx context.Context, year, month int, branch string) (string, error) {
	summary, err := s.reports.Summarize(ctx, year, month, branch)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Pay Sheet %d-%02d", year, month))
	pdf.Ln(12)

	headers := []string{
		"#", "Name", "Job", "Branch", "Worked", "Absent", "Overtime", "Delay",
		"Basic", "Additional", "Delay Ded.", "Absence Ded.", "Loan", "Insurance",
		"Extra", "Day 10", "Day 20", "Net",
	}
	widths := []float64{
		8, 26, 20, 20, 13, 13, 15, 13,
		16, 16, 16, 16, 14, 16, 13, 12, 12, 18,
	}

	pdf.SetFont("Helvetica", "B", 7)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7)
	var totalNet float64
	for _, row := range summary.Rows {
		b := row.Breakdown
		cells := []string{
			fmt.Sprintf("%d", row.BranchSeq),
			b.EmployeeName,
			row.Employee.Job,
			b.Branch,
			fmt.Sprintf("%d", b.DaysWorked),
			fmt.Sprintf("%d", b.AbsenceDays),
			fmt.Sprintf("%.1f", b.OvertimeHours),
			fmt.Sprintf("%.1f", b.DelayHours),
			money.Format2(b.BasicWage),
			money.Format2(b.Additional),
			money.Format2(b.DelayDeduction),
			money.Format2(b.AbsenceDeduction),
			money.Format2(b.LoanInstallment),
			money.Format2(b.InsuranceDeduction),
			money.Format2(b.ExtraDeduction),
			money.Format2(b.Deduction10Amount),
			money.Format2(b.Deduction20Amount),
			money.Format2(b.NetSalary),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		totalNet += b.NetSalary
	}

	// No totals row for an empty registry.
	if len(summary.Rows) > 0 {
		pdf.SetFont("Helvetica", "B", 7)
		var leading float64
		for _, w := range widths[:len(widths)-1] {
			leading += w
		}
		pdf.CellFormat(leading, 7, "Total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[len(widths)-1], 7, money.Format2(totalNet), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	name := fmt.Sprintf("sheets/pay-sheet-%d-%02d.pdf", year, month)
	if branch != "" {
		name = fmt.Sprintf("sheets/pay-sheet-%d-%02d-%s.pdf", year, month, branch)
	}
	return s.store(ctx, pdf, name)
}

// AllEmployeesSheet implements SheetService.
func (s *SheetServiceImpl) AllEmployeesSheet(ctx context.Context, year, month int) (string, error) {
	summary, err := s.reports.Summarize(ctx, year, month, "")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("All Employees %d-%02d", year, month))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 8, "Name", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Job", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Net Salary", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range summary.Rows {
		pdf.CellFormat(60, 7, row.Breakdown.EmployeeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, row.Employee.Job, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, money.Format2(row.Breakdown.NetSalary), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if len(summary.Rows) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 8, "Company Total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, money.Format2(summary.GrandNetTotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	return s.store(ctx, pdf, fmt.Sprintf("sheets/all-employees-%d-%02d.pdf", year, month))
}

// GrandTotalsSheet implements SheetService.
func (s *SheetServiceImpl) GrandTotalsSheet(ctx context.Context, year, month int) (string, error) {
	summary, err := s.reports.Summarize(ctx, year, month, "")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Grand Totals %d-%02d", year, month))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 8, "Name", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 8, "Job", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 8, "Branch", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Net Salary", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range summary.Rows {
		pdf.CellFormat(50, 7, row.Breakdown.EmployeeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, row.Employee.Job, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, row.Breakdown.Branch, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, money.Format2(row.Breakdown.NetSalary), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if len(summary.Rows) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(140, 8, "Company Total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, money.Format2(summary.GrandNetTotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	return s.store(ctx, pdf, fmt.Sprintf("sheets/grand-totals-%d-%02d.pdf", year, month))
}

// BranchPaySheet implements SheetService.
func (s *SheetServiceImpl) BranchPaySheet(ctx context.Context, year, month int) (string, error) {
	summary, err := s.reports.Summarize(ctx, year, month, "")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")

	for _, bt := range summary.BranchTotals {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 10, fmt.Sprintf("Branch %s - %d-%02d", bt.Branch, year, month))
		pdf.Ln(12)

		for _, row := range summary.Rows {
			if row.Breakdown.Branch != bt.Branch {
				continue
			}
			b := row.Breakdown
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Cell(0, 8, fmt.Sprintf("%d. %s - %s", row.BranchSeq, b.EmployeeName, row.Employee.Job))
			pdf.Ln(7)
			pdf.SetFont("Helvetica", "", 10)
			pdf.Cell(0, 6, fmt.Sprintf("Worked %d days, absent %d, overtime %.1fh, delay %.1fh",
				b.DaysWorked, b.AbsenceDays, b.OvertimeHours, b.DelayHours))
			pdf.Ln(6)
			pdf.Cell(0, 6, fmt.Sprintf("Basic %s  Additional %s  Loan %s",
				money.Format2(b.BasicWage), money.Format2(b.Additional), money.Format2(b.LoanInstallment)))
			pdf.Ln(6)
			pdf.Cell(0, 6, fmt.Sprintf("Deductions: delay %s, absence %s, insurance %s, extra %s, day10 %s, day20 %s",
				money.Format2(b.DelayDeduction), money.Format2(b.AbsenceDeduction),
				money.Format2(b.InsuranceDeduction), money.Format2(b.ExtraDeduction),
				money.Format2(b.Deduction10Amount), money.Format2(b.Deduction20Amount)))
			pdf.Ln(6)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.Cell(0, 7, fmt.Sprintf("Net salary: %s  (daily %s)",
				money.Format2(b.NetSalary), money.Format2(b.DailySalary)))
			pdf.Ln(10)
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 8, fmt.Sprintf("Branch total: %s across %d employees",
			money.Format2(bt.MonthlyTotal), bt.EmployeeCount))
	}

	if len(summary.BranchTotals) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 10, "No employees registered")
	}

	return s.store(ctx, pdf, fmt.Sprintf("sheets/branch-pay-sheet-%d-%02d.pdf", year, month))
}
