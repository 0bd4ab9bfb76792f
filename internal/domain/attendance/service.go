package attendance

import (
	"context"
)

type AttendanceService interface {
	GetMonth(ctx context.Context, employeeName string, year, month int) (MonthResponse, error)
	SetDay(ctx context.Context, employeeName string, year, month, day int, req SetDayRequest) (MonthResponse, error)
	ClearDay(ctx context.Context, employeeName string, year, month, day int) (MonthResponse, error)
}
