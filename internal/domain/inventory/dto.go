package inventory

import "github.com/brown009872/payroll-app/internal/pkg/validator"

type SaveStockRequest struct {
	Date           string `json:"date"`
	Product        string `json:"product"`
	StartQty       int64  `json:"start_qty"`
	EndQty         int64  `json:"end_qty"`
	Consumed       int64  `json:"consumed"`
	Ordered        int64  `json:"ordered"`
	CeilingWeekday int64  `json:"ceiling_weekday"`
	CeilingWeekend int64  `json:"ceiling_weekend"`
}

func (r *SaveStockRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	if validator.IsEmpty(r.Product) {
		errs.Add("product", "product is required")
	}
	quantities := []struct {
		field string
		value int64
	}{
		{"start_qty", r.StartQty},
		{"end_qty", r.EndQty},
		{"consumed", r.Consumed},
		{"ordered", r.Ordered},
		{"ceiling_weekday", r.CeilingWeekday},
		{"ceiling_weekend", r.CeilingWeekend},
	}
	for _, q := range quantities {
		if q.value < 0 {
			errs.Add(q.field, q.field+" must not be negative")
		}
	}
	return errs.Err()
}

type StockFilter struct {
	Product string
	From    string
	To      string
}

func (f *StockFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.From != "" {
		if _, ok := validator.IsValidDate(f.From); !ok {
			errs.Add("from", "from must be in YYYY-MM-DD format")
		}
	}
	if f.To != "" {
		if _, ok := validator.IsValidDate(f.To); !ok {
			errs.Add("to", "to must be in YYYY-MM-DD format")
		}
	}
	return errs.Err()
}

// CarryOver suggests today's opening stock from the latest earlier count.
type CarryOver struct {
	Product  string `json:"product"`
	FromDate string `json:"from_date"`
	StartQty int64  `json:"start_qty"`
}

type CatalogFilter struct {
	Category string
	Query    string
}

func (f *CatalogFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Category != "" && !validator.IsInSlice(f.Category, CategoryValues) {
		errs.Add("category", "category must be one of the catalog categories")
	}
	return errs.Err()
}

// MaxCartQuantity bounds a single cart line.
const MaxCartQuantity = 100_000

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	// Quantity defaults to 1.
	Quantity int64 `json:"quantity"`
}

func (r *AddCartItemRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ProductID) {
		errs.Add("product_id", "product_id is required")
	}
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	if r.Quantity < 0 || r.Quantity > MaxCartQuantity {
		errs.Add("quantity", "quantity must be between 1 and 100000")
	}
	return errs.Err()
}

type ChangeCartQuantityRequest struct {
	ProductID string `json:"-"`
	Delta     int64  `json:"delta"`
}

func (r *ChangeCartQuantityRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ProductID) {
		errs.Add("product_id", "product_id is required")
	}
	if r.Delta == 0 {
		errs.Add("delta", "delta must not be zero")
	}
	return errs.Err()
}

type PlaceOrderRequest struct {
	// Date defaults to today.
	Date string `json:"date"`
}

func (r *PlaceOrderRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	return errs.Err()
}
