package inventory

import "context"

// DefaultSupplier is the supplier whose order history is imported.
const DefaultSupplier = "Wujia"

// Source returns the orders currently visible at a supplier.
type Source interface {
	Name() string
	FetchOrders(ctx context.Context) ([]Order, error)
}
