package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name                   string
		start, ordered, endQty int64
		want                   float64
	}{
		{"typical day", 2, 5, 4, 60},
		{"nothing ordered", 10, 0, 2, 0},
		{"fractional", 0, 3, 2, 33.3},
		{"more used than ordered", 5, 2, 0, 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Efficiency(tt.start, tt.ordered, tt.endQty))
		})
	}
}

func TestOrder_Normalize(t *testing.T) {
	o := Order{
		OrderID: "WJ-1",
		Products: []OrderProduct{
			{Name: "Tea", Quantity: 2, UnitPrice: 150_000},
			{Name: "Cups", Quantity: 1, UnitPrice: 80_000, Total: 75_000},
		},
	}
	o.Normalize()

	assert.Equal(t, int64(300_000), o.Products[0].Total)
	assert.Equal(t, int64(375_000), o.TotalAmount)

	empty := Order{OrderID: "WJ-2", TotalAmount: 10}
	empty.Normalize()
	assert.NotNil(t, empty.Products)
	assert.Equal(t, int64(10), empty.TotalAmount)
}
