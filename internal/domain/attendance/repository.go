package attendance

import "context"

type AttendanceRepository interface {
	List(ctx context.Context) ([]Record, error)
	// Upsert inserts or replaces the record with the same (date, employee_id).
	Upsert(ctx context.Context, rec Record) error
	Delete(ctx context.Context, date, employeeID string) error
	DeleteAll(ctx context.Context) error
}
