package inventory

import "context"

type StockRepository interface {
	List(ctx context.Context, filter StockFilter) ([]StockRecord, error)
	// Upsert inserts or replaces the record with the same (date, product).
	Upsert(ctx context.Context, rec StockRecord) (StockRecord, error)
	// Latest returns the most recent record of product dated before date.
	Latest(ctx context.Context, product, before string) (StockRecord, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type OrderRepository interface {
	List(ctx context.Context, limit int) ([]Order, error)
	// Upsert inserts or replaces the order with the same (supplier, order_id)
	// and reports whether it was new.
	Upsert(ctx context.Context, order Order) (bool, error)
	DeleteAll(ctx context.Context) error
}
