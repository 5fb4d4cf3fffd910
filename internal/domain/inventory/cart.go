package inventory

import (
	"sync"
	"time"
)

// CartItem is a catalog product with the quantity to order.
type CartItem struct {
	Product
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// Cart is a draft supplier order. Totals are recomputed after every change.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int64      `json:"total_items"`
	TotalPrice int64      `json:"total_price"`
}

func (c *Cart) recalculate() {
	c.TotalItems, c.TotalPrice = 0, 0
	for i := range c.Items {
		it := &c.Items[i]
		it.LineTotal = it.UnitPrice * it.Quantity
		c.TotalItems += it.Quantity
		c.TotalPrice += it.LineTotal
	}
}

func (c *Cart) index(productID string) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts qty of p in the cart, on top of any quantity already there.
func (c *Cart) Add(p Product, qty int64) {
	if i := c.index(p.ID); i >= 0 {
		c.Items[i].Quantity += qty
	} else {
		c.Items = append(c.Items, CartItem{Product: p, ProductID: p.ID, Quantity: qty})
	}
	c.recalculate()
}

// Remove drops the line of productID and reports whether it was there.
func (c *Cart) Remove(productID string) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.recalculate()
	return true
}

// ChangeQuantity adds delta to the quantity of productID. A line that drops
// to zero or below is removed.
func (c *Cart) ChangeQuantity(productID string, delta int64) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	if c.Items[i].Quantity+delta <= 0 {
		return c.Remove(productID)
	}
	c.Items[i].Quantity += delta
	c.recalculate()
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
	c.recalculate()
}

func (c Cart) Empty() bool { return len(c.Items) == 0 }

// Clone returns a copy that shares no items with c.
func (c Cart) Clone() Cart {
	out := c
	out.Items = make([]CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}

// ToOrder turns the cart into a catalog order dated date.
func (c Cart) ToOrder(orderID, date string) Order {
	order := Order{
		OrderID:  orderID,
		Date:     date,
		Supplier: CatalogSupplier,
		Status:   OrderStatusPending,
		Products: make([]OrderProduct, 0, len(c.Items)),
	}
	for _, it := range c.Items {
		order.Products = append(order.Products, OrderProduct{
			Name:      it.NameVi,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	order.Normalize()
	return order
}

type cartSlot struct {
	cart     Cart
	lastSeen time.Time
}

// CartRegistry keeps one cart per client session.
type CartRegistry struct {
	mu    sync.Mutex
	carts map[string]*cartSlot
}

func NewCartRegistry() *CartRegistry {
	return &CartRegistry{carts: make(map[string]*cartSlot)}
}

// Update runs fn on the cart of session under the registry lock and returns
// a copy of the cart afterwards. The cart is created on first use.
func (r *CartRegistry) Update(session string, fn func(c *Cart) error) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.carts[session]
	if !ok {
		slot = &cartSlot{}
		r.carts[session] = slot
	}
	slot.lastSeen = time.Now()
	if fn != nil {
		if err := fn(&slot.cart); err != nil {
			return slot.cart.Clone(), err
		}
	}
	return slot.cart.Clone(), nil
}

// Prune drops carts idle for longer than maxIdle and returns how many were dropped.
func (r *CartRegistry) Prune(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := time.Now().Add(-maxIdle)
	n := 0
	for id, slot := range r.carts {
		if slot.lastSeen.Before(cutoff) {
			delete(r.carts, id)
			n++
		}
	}
	return n
}
