package revenue

import "time"

// DailyRevenue is the S2A ledger line of one day. There is at most one per date.
type DailyRevenue struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	Offline    int64     `json:"offline"`
	Grab       int64     `json:"grab"`
	ShopeeFood int64     `json:"shopee_food"`
	Be         int64     `json:"be"`
	XanhSm     int64     `json:"xanh_sm"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Online is the sum of the delivery platform channels.
func (r DailyRevenue) Online() int64 {
	return r.Grab + r.ShopeeFood + r.Be + r.XanhSm
}

func (r DailyRevenue) Total() int64 {
	return r.Offline + r.Online()
}

// BusinessSettings identifies the household business printed on the ledger.
type BusinessSettings struct {
	BusinessName       string    `json:"business_name"`
	Address            string    `json:"address"`
	TaxNumber          string    `json:"tax_number"`
	BusinessLocation   string    `json:"business_location"`
	RepresentativeName string    `json:"representative_name"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// MonthlySummary totals a calendar month of the ledger.
type MonthlySummary struct {
	Year            int            `json:"year"`
	Month           int            `json:"month"`
	Days            []DailyRevenue `json:"days"`
	TotalOffline    int64          `json:"total_offline"`
	TotalGrab       int64          `json:"total_grab"`
	TotalShopeeFood int64          `json:"total_shopee_food"`
	TotalBe         int64          `json:"total_be"`
	TotalXanhSm     int64          `json:"total_xanh_sm"`
	TotalOnline     int64          `json:"total_online"`
	GrandTotal      int64          `json:"grand_total"`
	Taxes           Taxes          `json:"taxes"`
}

// Summarize totals days, which must already be filtered to the month.
func Summarize(year, month int, days []DailyRevenue) MonthlySummary {
	s := MonthlySummary{Year: year, Month: month, Days: days}
	if s.Days == nil {
		s.Days = []DailyRevenue{}
	}
	for _, d := range days {
		s.TotalOffline += d.Offline
		s.TotalGrab += d.Grab
		s.TotalShopeeFood += d.ShopeeFood
		s.TotalBe += d.Be
		s.TotalXanhSm += d.XanhSm
	}
	s.TotalOnline = s.TotalGrab + s.TotalShopeeFood + s.TotalBe + s.TotalXanhSm
	s.GrandTotal = s.TotalOffline + s.TotalOnline
	s.Taxes = ComputeTaxes(s.TotalOffline, s.TotalOnline)
	return s
}
