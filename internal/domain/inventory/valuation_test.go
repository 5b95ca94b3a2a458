package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestShortfall(t *testing.T) {
	tests := []struct {
		name             string
		current, minimum string
		want             string
	}{
		{"bajo el mínimo", "2", "5", "3"},
		{"en el mínimo", "5", "5", "0"},
		{"sobre el mínimo", "9", "1", "0"},
		{"decimales", "1.25", "2.5", "1.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shortfall(d(tt.current), d(tt.minimum))
			assert.True(t, got.Equal(d(tt.want)), "got %s", got)
		})
	}
}

func TestStockValue(t *testing.T) {
	assert.True(t, StockValue(d("2"), d("45.5")).Equal(d("91")))
	assert.True(t, StockValue(d("0.333"), d("3")).Equal(d("1")))
	assert.True(t, StockValue(d("-1"), d("3")).IsZero())
}
