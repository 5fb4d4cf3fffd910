package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brown009872/payroll-app/internal/domain/inventory"
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/google/uuid"
)

// DefaultCart is used by clients that send no session id.
const DefaultCart = "default"

func cartSession(id string) string {
	if id == "" {
		return DefaultCart
	}
	return id
}

// ListCatalog implements inventory.InventoryService.
func (s *InventoryServiceImpl) ListCatalog(ctx context.Context, filter inventory.CatalogFilter) ([]inventory.Product, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return inventory.SearchCatalog(filter), nil
}

// GetCart implements inventory.InventoryService.
func (s *InventoryServiceImpl) GetCart(ctx context.Context, sessionID string) inventory.Cart {
	cart, _ := s.carts.Update(cartSession(sessionID), nil)
	return cart
}

// AddToCart implements inventory.InventoryService.
func (s *InventoryServiceImpl) AddToCart(ctx context.Context, sessionID string, req inventory.AddCartItemRequest) (inventory.Cart, error) {
	if err := req.Validate(); err != nil {
		return inventory.Cart{}, err
	}
	product, ok := inventory.FindProduct(strings.TrimSpace(req.ProductID))
	if !ok {
		return inventory.Cart{}, inventory.ErrProductNotFound
	}
	return s.carts.Update(cartSession(sessionID), func(c *inventory.Cart) error {
		c.Add(product, req.Quantity)
		return nil
	})
}

// ChangeCartQuantity implements inventory.InventoryService.
func (s *InventoryServiceImpl) ChangeCartQuantity(ctx context.Context, sessionID string, req inventory.ChangeCartQuantityRequest) (inventory.Cart, error) {
	if err := req.Validate(); err != nil {
		return inventory.Cart{}, err
	}
	return s.carts.Update(cartSession(sessionID), func(c *inventory.Cart) error {
		if !c.ChangeQuantity(req.ProductID, req.Delta) {
			return inventory.ErrCartItemNotFound
		}
		return nil
	})
}

// RemoveFromCart implements inventory.InventoryService.
func (s *InventoryServiceImpl) RemoveFromCart(ctx context.Context, sessionID, productID string) (inventory.Cart, error) {
	return s.carts.Update(cartSession(sessionID), func(c *inventory.Cart) error {
		if !c.Remove(productID) {
			return inventory.ErrCartItemNotFound
		}
		return nil
	})
}

// ClearCart implements inventory.InventoryService.
func (s *InventoryServiceImpl) ClearCart(ctx context.Context, sessionID string) inventory.Cart {
	cart, _ := s.carts.Update(cartSession(sessionID), func(c *inventory.Cart) error {
		c.Clear()
		return nil
	})
	return cart
}

// PlaceOrder implements inventory.InventoryService. The cart is only emptied
// once the order is saved.
func (s *InventoryServiceImpl) PlaceOrder(ctx context.Context, sessionID string, req inventory.PlaceOrderRequest) (inventory.Order, error) {
	if err := req.Validate(); err != nil {
		return inventory.Order{}, err
	}
	date := req.Date
	if date == "" {
		date = utils.FormatDate(s.now())
	}

	var order inventory.Order
	_, err := s.carts.Update(cartSession(sessionID), func(c *inventory.Cart) error {
		if c.Empty() {
			return inventory.ErrCartEmpty
		}
		order = c.ToOrder("CART-"+strings.ToUpper(uuid.NewString()[:8]), date)
		order.ImportedAt = s.now()
		if _, err := s.orderRepo.Upsert(ctx, order); err != nil {
			return fmt.Errorf("failed to save order %s: %w", order.OrderID, err)
		}
		c.Clear()
		return nil
	})
	if err != nil {
		return inventory.Order{}, err
	}

	s.logger.Info("Catalog order placed", "order_id", order.OrderID, "lines", len(order.Products), "total", order.TotalAmount)
	return order, nil
}

// PruneCarts implements inventory.InventoryService.
func (s *InventoryServiceImpl) PruneCarts(ctx context.Context, maxIdle time.Duration) int {
	return s.carts.Prune(maxIdle)
}
