package revenue

import "context"

type RevenueRepository interface {
	// ListRange returns the entries with from <= date <= to, ordered by date.
	ListRange(ctx context.Context, from, to string) ([]DailyRevenue, error)
	GetByDate(ctx context.Context, date string) (DailyRevenue, error)
	// Upsert inserts or replaces the entry of the same date.
	Upsert(ctx context.Context, rev DailyRevenue) (DailyRevenue, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type SettingsRepository interface {
	// Get returns zero settings when none were saved.
	Get(ctx context.Context) (BusinessSettings, error)
	Save(ctx context.Context, s BusinessSettings) error
}
