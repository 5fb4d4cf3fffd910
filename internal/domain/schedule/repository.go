package schedule

import "context"

type WorkScheduleRepository interface {
	List(ctx context.Context) ([]Entry, error)
	// Upsert inserts or replaces the entry with the same (date, employee_id).
	Upsert(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, date, employeeID string) error
	DeleteAll(ctx context.Context) error
}
