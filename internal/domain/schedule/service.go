package schedule

import (
	"context"
	"io"
	"time"
)

// ScheduleService is the schedule assignment engine. Board gestures are
// scoped to a client session id.
type ScheduleService interface {
	GetWeek(ctx context.Context, sessionID, anchor string) (WeekView, error)
	ExportWeek(ctx context.Context, anchor string) ([]DayExport, error)
	ExportWeekXLSX(ctx context.Context, anchor string, w io.Writer) error

	// Toggle flips one slot of the weekly table
	Toggle(ctx context.Context, req ToggleRequest) (Entry, error)

	// Quick assign
	Select(ctx context.Context, sessionID string, req SelectRequest) error
	ClearSelection(ctx context.Context, sessionID string)
	ClickCell(ctx context.Context, sessionID string, req ClickRequest) (PlacementResult, error)
	StartDrag(ctx context.Context, sessionID string, req DragStartRequest) error
	Drop(ctx context.Context, sessionID string, req DropRequest) (PlacementResult, error)
	RemoveAssignment(ctx context.Context, req RemoveRequest) (PlacementResult, error)

	// Custom shift overlay
	EnableCustomShift(ctx context.Context, req CustomShiftRequest) (Entry, error)
	DisableCustomShift(ctx context.Context, req CustomShiftRequest) (PlacementResult, error)
	SetCustomShiftTimes(ctx context.Context, req CustomShiftRequest) (PlacementResult, error)

	// Week rows
	AddRow(ctx context.Context, req AddRowRequest) (Entry, error)
	RemoveRow(ctx context.Context, req RemoveRowRequest) (int, error)
	ResetWeek(ctx context.Context, req ResetWeekRequest) (int, error)

	// PruneSessions forgets board sessions idle for longer than maxIdle
	PruneSessions(ctx context.Context, maxIdle time.Duration) int
}
