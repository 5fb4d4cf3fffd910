package payroll

import "context"

type WeeklyDelayRepository interface {
	List(ctx context.Context) ([]WeeklyDelay, error)
	Upsert(ctx context.Context, delay WeeklyDelay) error
	DeleteAll(ctx context.Context) error
}
