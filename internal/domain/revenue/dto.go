package revenue

import (
	"strings"

	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/brown009872/payroll-app/internal/pkg/validator"
)

// SaveRevenueRequest creates or replaces the entry of a date. Amounts accept
// plain numbers or grouped text such as "1.500.000".
type SaveRevenueRequest struct {
	Date       string       `json:"date"`
	Offline    utils.Amount `json:"offline"`
	Grab       utils.Amount `json:"grab"`
	ShopeeFood utils.Amount `json:"shopee_food"`
	Be         utils.Amount `json:"be"`
	XanhSm     utils.Amount `json:"xanh_sm"`
}

func (r *SaveRevenueRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	return errs.Err()
}

// IsEmpty reports whether every channel is zero.
func (r *SaveRevenueRequest) IsEmpty() bool {
	return r.Offline == 0 && r.Grab == 0 && r.ShopeeFood == 0 && r.Be == 0 && r.XanhSm == 0
}

type MonthFilter struct {
	Year  int
	Month int
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(f.Month) {
		errs.Add("month", "month must be between 1 and 12")
	}
	if f.Year < 2000 || f.Year > 2100 {
		errs.Add("year", "year must be between 2000 and 2100")
	}
	return errs.Err()
}

type UpdateSettingsRequest struct {
	BusinessName       string `json:"business_name"`
	Address            string `json:"address"`
	TaxNumber          string `json:"tax_number"`
	BusinessLocation   string `json:"business_location"`
	RepresentativeName string `json:"representative_name"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors
	r.BusinessName = strings.TrimSpace(r.BusinessName)
	if validator.IsEmpty(r.BusinessName) {
		errs.Add("business_name", "business_name is required")
	}
	if len(r.TaxNumber) > 20 {
		errs.Add("tax_number", "tax_number must not exceed 20 characters")
	}
	return errs.Err()
}
