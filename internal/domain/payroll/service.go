package payroll

import (
	"context"
	"io"
)

type PayrollService interface {
	// WeeklySummary aggregates the Monday-Sunday week containing anchor.
	// Only employees with hours or pay in that week are listed.
	WeeklySummary(ctx context.Context, anchor string) (WeeklySummary, error)

	SetWeeklyDelay(ctx context.Context, req SetWeeklyDelayRequest) (WeeklyDelay, error)

	// ExportWeeklyPDF writes the weekly summary as a PDF document.
	ExportWeeklyPDF(ctx context.Context, anchor string, w io.Writer) error
}
