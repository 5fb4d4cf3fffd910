package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord is the daily stock count of one product.
type StockRecord struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	Product        string    `json:"product"`
	StartQty       int64     `json:"start_qty"`
	EndQty         int64     `json:"end_qty"`
	Consumed       int64     `json:"consumed"`
	Ordered        int64     `json:"ordered"`
	CeilingWeekday int64     `json:"ceiling_weekday"`
	CeilingWeekend int64     `json:"ceiling_weekend"`
	Efficiency     float64   `json:"efficiency"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Efficiency is the share of the ordered quantity that was used, in percent
// rounded to one decimal. It is 0 when nothing was ordered.
func Efficiency(startQty, ordered, endQty int64) float64 {
	if ordered <= 0 {
		return 0
	}
	used := decimal.NewFromInt(startQty + ordered - endQty)
	pct := used.Div(decimal.NewFromInt(ordered)).Mul(decimal.NewFromInt(100)).Round(1)
	return pct.InexactFloat64()
}

func (r *StockRecord) Recalculate() {
	r.Efficiency = Efficiency(r.StartQty, r.Ordered, r.EndQty)
}

// Ceiling returns the weekend or weekday stock ceiling.
func (r StockRecord) Ceiling(weekend bool) int64 {
	if weekend {
		return r.CeilingWeekend
	}
	return r.CeilingWeekday
}

// OrderProduct is one line of a supplier order.
type OrderProduct struct {
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}

// OrderStatusPending marks an order placed from the catalog cart that was
// not received yet.
const OrderStatusPending = "pending"

// Order is a purchase order imported from a supplier or placed from the cart.
type Order struct {
	OrderID     string         `json:"order_id"`
	Date        string         `json:"date"`
	Supplier    string         `json:"supplier"`
	Status      string         `json:"status"`
	Products    []OrderProduct `json:"products"`
	TotalAmount int64          `json:"total_amount"`
	ImportedAt  time.Time      `json:"imported_at"`
}

// Normalize fills line totals and the order total when the source left them empty.
func (o *Order) Normalize() {
	var sum int64
	for i := range o.Products {
		p := &o.Products[i]
		if p.Total == 0 {
			p.Total = p.Quantity * p.UnitPrice
		}
		sum += p.Total
	}
	if o.TotalAmount == 0 {
		o.TotalAmount = sum
	}
	if o.Products == nil {
		o.Products = []OrderProduct{}
	}
}

// SyncResult reports one import run.
type SyncResult struct {
	Supplier string `json:"supplier"`
	Fetched  int    `json:"fetched"`
	Imported int    `json:"imported"`
}
