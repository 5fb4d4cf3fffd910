package payroll

import (
	"github.com/brown009872/payroll-app/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// CalculateHours returns the hours worked between two clock times, rounded to
// two decimals. A missing time, or a check-out before check-in, yields 0;
// shifts that cross midnight are not supported.
func CalculateHours(checkIn, checkOut string) float64 {
	if checkIn == "" || checkOut == "" {
		return 0
	}
	in, ok := utils.ParseClock(checkIn)
	if !ok {
		return 0
	}
	out, ok := utils.ParseClock(checkOut)
	if !ok {
		return 0
	}
	if out < in {
		return 0
	}
	return decimal.NewFromInt(int64(out - in)).Div(sixty).Round(2).InexactFloat64()
}

// CalculateDayTotal is round(hours * rate * multiplier + bonus - penalty).
// A multiplier of 0 or less counts as 1.
func CalculateDayTotal(hours float64, rate, bonus, penalty int64, multiplier float64) int64 {
	return base(hours, rate, multiplier).
		Add(decimal.NewFromInt(bonus)).
		Sub(decimal.NewFromInt(penalty)).
		Round(0).
		IntPart()
}

// CalculateProvisional is round(hours * rate), the plain pay before bonus,
// penalty or holiday multiplier.
func CalculateProvisional(hours float64, rate int64) int64 {
	return base(hours, rate, 1).Round(0).IntPart()
}

// CalculateHolidayProvisional is round(hours * rate * multiplier). It is the
// provisional amount stored on an attendance record.
func CalculateHolidayProvisional(hours float64, rate int64, multiplier float64) int64 {
	return base(hours, rate, multiplier).Round(0).IntPart()
}

func base(hours float64, rate int64, multiplier float64) decimal.Decimal {
	if multiplier <= 0 {
		multiplier = 1
	}
	return decimal.NewFromFloat(hours).
		Mul(decimal.NewFromInt(rate)).
		Mul(decimal.NewFromFloat(multiplier))
}
