package revenue

import (
	"context"
	"io"
)

type RevenueService interface {
	MonthlySummary(ctx context.Context, filter MonthFilter) (MonthlySummary, error)
	SaveDaily(ctx context.Context, req SaveRevenueRequest) (DailyRevenue, error)
	DeleteDaily(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (BusinessSettings, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (BusinessSettings, error)

	// ExportXLSX writes the monthly S2A ledger workbook
	ExportXLSX(ctx context.Context, filter MonthFilter, w io.Writer) error
}
