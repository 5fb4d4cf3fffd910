package revenue

import "errors"

var (
	ErrRevenueNotFound          = errors.New("revenue entry not found")
	ErrEmptyRevenue             = errors.New("at least one revenue channel must be greater than zero")
	ErrBusinessSettingsRequired = errors.New("business name must be set before exporting the ledger")
)
