package revenue

import "github.com/shopspring/decimal"

var (
	// GTGTRate is the flat value added tax rate on household business revenue.
	GTGTRate = decimal.RequireFromString("0.03")
	// TNCNRate is the flat personal income tax rate on household business revenue.
	TNCNRate = decimal.RequireFromString("0.015")
)

// Taxes are computed separately on the offline and online totals, each
// rounded to a whole dong, then added.
type Taxes struct {
	OfflineGTGT int64 `json:"offline_gtgt"`
	OfflineTNCN int64 `json:"offline_tncn"`
	OnlineGTGT  int64 `json:"online_gtgt"`
	OnlineTNCN  int64 `json:"online_tncn"`
	TotalGTGT   int64 `json:"total_gtgt"`
	TotalTNCN   int64 `json:"total_tncn"`
	Total       int64 `json:"total"`
}

func ComputeTaxes(offline, online int64) Taxes {
	t := Taxes{
		OfflineGTGT: applyRate(offline, GTGTRate),
		OfflineTNCN: applyRate(offline, TNCNRate),
		OnlineGTGT:  applyRate(online, GTGTRate),
		OnlineTNCN:  applyRate(online, TNCNRate),
	}
	t.TotalGTGT = t.OfflineGTGT + t.OnlineGTGT
	t.TotalTNCN = t.OfflineTNCN + t.OnlineTNCN
	t.Total = t.TotalGTGT + t.TotalTNCN
	return t
}

func applyRate(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}
