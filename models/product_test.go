package models

import "testing"

func TestStockLevel(t *testing.T) {
	tests := []struct {
		stock int
		want  string
	}{
		{0, StockLow},
		{4, StockLow},
		{5, StockMedium},
		{19, StockMedium},
		{20, StockHigh},
		{500, StockHigh},
	}
	for _, tc := range tests {
		p := Product{Stock: tc.stock}
		if got := p.StockLevel(); got != tc.want {
			t.Errorf("StockLevel(stock=%d) = %s, want %s", tc.stock, got, tc.want)
		}
	}
}
