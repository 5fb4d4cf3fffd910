package inventory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	orders []inventory.Order
	err    error
}

func (s *stubSource) Name() string { return "Wujia" }

func (s *stubSource) FetchOrders(ctx context.Context) ([]inventory.Order, error) {
	return s.orders, s.err
}

func newService(source inventory.Source) *InventoryServiceImpl {
	svc := NewInventoryService(memory.NewStockRepository(), memory.NewOrderRepository(), source, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.now = func() time.Time { return time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestSaveStock_Efficiency(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil)

	rec, err := svc.SaveStock(ctx, inventory.SaveStockRequest{
		Date: "2025-03-03", Product: " Trà sữa ", StartQty: 10, Ordered: 40, EndQty: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, "Trà sữa", rec.Product)
	assert.Equal(t, 87.5, rec.Efficiency)

	again, err := svc.SaveStock(ctx, inventory.SaveStockRequest{
		Date: "2025-03-03", Product: "Trà sữa", StartQty: 10, EndQty: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, rec.ID, again.ID)
	assert.Zero(t, again.Efficiency)

	_, err = svc.SaveStock(ctx, inventory.SaveStockRequest{Date: "2025-03-03", Product: "x", Ordered: -1})
	assert.Error(t, err)

	list, err := svc.ListStock(ctx, inventory.StockFilter{Product: "Trà sữa"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteStock(ctx, rec.ID))
	assert.ErrorIs(t, svc.DeleteStock(ctx, rec.ID), inventory.ErrStockRecordNotFound)
}

func TestSuggestCarryOver(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil)

	carry, err := svc.SuggestCarryOver(ctx, "Cafe", "2025-03-05")
	require.NoError(t, err)
	assert.Zero(t, carry.StartQty)
	assert.Empty(t, carry.FromDate)

	for _, req := range []inventory.SaveStockRequest{
		{Date: "2025-03-01", Product: "Cafe", EndQty: 7},
		{Date: "2025-03-03", Product: "Cafe", EndQty: 4},
		{Date: "2025-03-05", Product: "Cafe", EndQty: 9},
		{Date: "2025-03-04", Product: "Tea", EndQty: 2},
	} {
		_, err := svc.SaveStock(ctx, req)
		require.NoError(t, err)
	}

	carry, err = svc.SuggestCarryOver(ctx, "Cafe", "2025-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03", carry.FromDate)
	assert.Equal(t, int64(4), carry.StartQty)

	_, err = svc.SuggestCarryOver(ctx, "", "2025-03-05")
	assert.Error(t, err)
}

func TestExportReportPDF(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil)
	_, err := svc.SaveStock(ctx, inventory.SaveStockRequest{Date: "2025-03-03", Product: "Cafe", Ordered: 10})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportReportPDF(ctx, "2025-03-03", &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestSyncOrders(t *testing.T) {
	ctx := context.Background()

	_, err := newService(nil).SyncOrders(ctx)
	assert.ErrorIs(t, err, inventory.ErrOrderSourceDisabled)

	source := &stubSource{orders: []inventory.Order{
		{OrderID: "A1", Date: "2025-03-01", Products: []inventory.OrderProduct{{Name: "Cafe", Quantity: 2, UnitPrice: 50_000}}},
		{OrderID: "A2", Date: "2025-03-02", TotalAmount: 10_000},
	}}
	svc := newService(source)

	result, err := svc.SyncOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, inventory.SyncResult{Supplier: "Wujia", Fetched: 2, Imported: 2}, result)

	result, err = svc.SyncOrders(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Imported)

	orders, err := svc.ListOrders(ctx, 10)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "A2", orders[0].OrderID)
	assert.Equal(t, int64(100_000), orders[1].TotalAmount)
	assert.Equal(t, "Wujia", orders[1].Supplier)
	assert.False(t, orders[1].ImportedAt.IsZero())

	source.err = errors.New("portal down")
	_, err = svc.SyncOrders(ctx)
	assert.Error(t, err)
}

func TestCatalogCart(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil)

	products, err := svc.ListCatalog(ctx, inventory.CatalogFilter{Category: "TRA", Query: "bi dao"})
	require.NoError(t, err)
	require.Len(t, products, 1)

	_, err = svc.ListCatalog(ctx, inventory.CatalogFilter{Category: "DRINKS"})
	assert.Error(t, err)

	_, err = svc.AddToCart(ctx, "s1", inventory.AddCartItemRequest{ProductID: "missing"})
	assert.ErrorIs(t, err, inventory.ErrProductNotFound)

	cart, err := svc.AddToCart(ctx, "s1", inventory.AddCartItemRequest{ProductID: products[0].ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart.TotalItems)

	cart, err = svc.AddToCart(ctx, "s1", inventory.AddCartItemRequest{ProductID: "wujia-n-002", Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(11), cart.TotalItems)
	assert.Equal(t, int64(132000+10*70000), cart.TotalPrice)

	// Carts are kept per session.
	assert.True(t, svc.GetCart(ctx, "s2").Empty())

	cart, err = svc.ChangeCartQuantity(ctx, "s1", inventory.ChangeCartQuantityRequest{ProductID: "wujia-n-002", Delta: -10})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	_, err = svc.ChangeCartQuantity(ctx, "s1", inventory.ChangeCartQuantityRequest{ProductID: "wujia-n-002", Delta: 1})
	assert.ErrorIs(t, err, inventory.ErrCartItemNotFound)
	_, err = svc.RemoveFromCart(ctx, "s1", "wujia-n-002")
	assert.ErrorIs(t, err, inventory.ErrCartItemNotFound)

	_, err = svc.PlaceOrder(ctx, "s2", inventory.PlaceOrderRequest{})
	assert.ErrorIs(t, err, inventory.ErrCartEmpty)

	order, err := svc.PlaceOrder(ctx, "s1", inventory.PlaceOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", order.Date)
	assert.Equal(t, inventory.CatalogSupplier, order.Supplier)
	assert.Equal(t, int64(132000), order.TotalAmount)
	assert.True(t, svc.GetCart(ctx, "s1").Empty())

	orders, err := svc.ListOrders(ctx, 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.OrderID, orders[0].OrderID)

	_, err = svc.AddToCart(ctx, "s1", inventory.AddCartItemRequest{ProductID: "wujia-t-001"})
	require.NoError(t, err)
	assert.True(t, svc.ClearCart(ctx, "s1").Empty())
	assert.Equal(t, 2, svc.PruneCarts(ctx, -time.Second))
}
