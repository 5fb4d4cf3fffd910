package inventory

import (
	"context"
	"io"
	"time"
)

type InventoryService interface {
	ListStock(ctx context.Context, filter StockFilter) ([]StockRecord, error)
	SaveStock(ctx context.Context, req SaveStockRequest) (StockRecord, error)
	DeleteStock(ctx context.Context, id string) error
	// SuggestCarryOver proposes the opening stock of product on date
	SuggestCarryOver(ctx context.Context, product, date string) (CarryOver, error)
	ExportReportPDF(ctx context.Context, date string, w io.Writer) error

	ListOrders(ctx context.Context, limit int) ([]Order, error)
	// SyncOrders imports the supplier's current order history
	SyncOrders(ctx context.Context) (SyncResult, error)

	ListCatalog(ctx context.Context, filter CatalogFilter) ([]Product, error)
	GetCart(ctx context.Context, sessionID string) Cart
	AddToCart(ctx context.Context, sessionID string, req AddCartItemRequest) (Cart, error)
	ChangeCartQuantity(ctx context.Context, sessionID string, req ChangeCartQuantityRequest) (Cart, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) (Cart, error)
	ClearCart(ctx context.Context, sessionID string) Cart
	// PlaceOrder saves the cart as a pending catalog order and empties it
	PlaceOrder(ctx context.Context, sessionID string, req PlaceOrderRequest) (Order, error)
	// PruneCarts forgets carts idle for longer than maxIdle
	PruneCarts(ctx context.Context, maxIdle time.Duration) int
}
