package report

import (
	"github.com/payledger/payledger-backend-go/internal/domain/payroll"
	"github.com/payledger/payledger-backend-go/internal/pkg/money"
)

type RowResponse struct {
	BranchSeq int                       `json:"branch_seq"`
	Breakdown payroll.BreakdownResponse `json:"breakdown"`
}

type BranchTotalsResponse struct {
	Branch        string  `json:"branch"`
	EmployeeCount int     `json:"employee_count"`
	DailyTotal    float64 `json:"daily_total"`
	MonthlyTotal  float64 `json:"monthly_total"`
}

type DailyTotalResponse struct {
	Branch string  `json:"branch"`
	Day    int     `json:"day"`
	Total  float64 `json:"total"`
}

type ReviewItemResponse struct {
	EmployeeName string  `json:"employee_name"`
	Branch       string  `json:"branch"`
	NetSalary    float64 `json:"net_salary"`
}

type SummaryResponse struct {
	Year          int                    `json:"year"`
	Month         int                    `json:"month"`
	Rows          []RowResponse          `json:"rows"`
	BranchTotals  []BranchTotalsResponse `json:"branch_totals"`
	DailyTotals   []DailyTotalResponse   `json:"daily_totals"`
	MonthlyReview []ReviewItemResponse   `json:"monthly_review"`
	GrandNetTotal float64                `json:"grand_net_total"`
}

func ToSummaryResponse(year, month int, s Summary) SummaryResponse {
	resp := SummaryResponse{
		Year:          year,
		Month:         month,
		Rows:          make([]RowResponse, 0, len(s.Rows)),
		BranchTotals:  make([]BranchTotalsResponse, 0, len(s.BranchTotals)),
		DailyTotals:   make([]DailyTotalResponse, 0, len(s.DailyTotals)),
		MonthlyReview: make([]ReviewItemResponse, 0, len(s.MonthlyReview)),
		GrandNetTotal: money.Round2(s.GrandNetTotal),
	}
	for _, r := range s.Rows {
		resp.Rows = append(resp.Rows, RowResponse{
			BranchSeq: r.BranchSeq,
			Breakdown: payroll.ToBreakdownResponse(r.Breakdown),
		})
	}
	for _, bt := range s.BranchTotals {
		resp.BranchTotals = append(resp.BranchTotals, BranchTotalsResponse{
			Branch:        bt.Branch,
			EmployeeCount: bt.EmployeeCount,
			DailyTotal:    money.Round2(bt.DailyTotal),
			MonthlyTotal:  money.Round2(bt.MonthlyTotal),
		})
	}
	for _, dt := range s.DailyTotals {
		resp.DailyTotals = append(resp.DailyTotals, DailyTotalResponse{
			Branch: dt.Branch,
			Day:    dt.Day,
			Total:  money.Round2(dt.Total),
		})
	}
	for _, ri := range s.MonthlyReview {
		resp.MonthlyReview = append(resp.MonthlyReview, ReviewItemResponse{
			EmployeeName: ri.EmployeeName,
			Branch:       ri.Branch,
			NetSalary:    money.Round2(ri.NetSalary),
		})
	}
	return resp
}
