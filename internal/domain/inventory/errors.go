package inventory

import "errors"

var (
	ErrStockRecordNotFound = errors.New("stock record not found")
	ErrOrderSourceDisabled = errors.New("no supplier order source is configured")
	ErrProductNotFound     = errors.New("product not found in catalog")
	ErrCartItemNotFound    = errors.New("product is not in the cart")
	ErrCartEmpty           = errors.New("cart is empty")
)
