package attendance

import (
	"context"
	"io"
)

type AttendanceService interface {
	// GetDailySheet lists the active employees of a day with their records
	GetDailySheet(ctx context.Context, date string) (DailySheet, error)

	// UpdateRecord edits a day's record, creating it on first edit
	UpdateRecord(ctx context.Context, req UpdateAttendanceRequest) (RecordView, error)

	DeleteRecord(ctx context.Context, date, employeeID string) error

	// ClearDay deletes every record of a date
	ClearDay(ctx context.Context, req ClearDayRequest) (int, error)

	// ClearEmployeeWeek deletes one employee's records for a week
	ClearEmployeeWeek(ctx context.Context, req ClearWeekRequest) (int, error)

	ExportCSV(ctx context.Context, req ExportRequest, w io.Writer) error
}
