package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol is appended to every formatted amount.
const CurrencySymbol = "₫"

var vnPrinter = message.NewPrinter(language.Vietnamese)

// FormatCurrency renders an integer amount of VND with Vietnamese digit grouping, e.g. "1.234.567 ₫".
func FormatCurrency(amount int64) string {
	return vnPrinter.Sprintf("%d", amount) + " " + CurrencySymbol
}

// FormatNumber renders an integer with Vietnamese digit grouping and no symbol.
func FormatNumber(amount int64) string {
	return vnPrinter.Sprintf("%d", amount)
}

// ParseCurrencyInput keeps only the digits of text and parses them.
// Text without digits, or too long to fit, parses to 0.
func ParseCurrencyInput(text string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Amount is a money value that decodes from a JSON number, an empty string
// or a grouped currency string such as "50.000 ₫".
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		*a = Amount(ParseCurrencyInput(s))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	if f < 0 {
		return fmt.Errorf("invalid amount: must not be negative")
	}
	*a = Amount(int64(f))
	return nil
}

// Int64 returns the amount as a plain integer.
func (a Amount) Int64() int64 {
	return int64(a)
}
