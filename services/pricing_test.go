package services

import (
	"math"
	"testing"
)

func TestDiscountedCost(t *testing.T) {
	tests := []struct {
		name     string
		unitCost float64
		discount float64
		expect   float64
	}{
		{"ten percent off", 10.00, 10, 9.00},
		{"no discount", 10.00, 0, 10.00},
		{"full discount", 50.00, 100, 0},
		{"fractional", 99.99, 25, 74.9925},
		{"zero cost", 0, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountedCost(tt.unitCost, tt.discount)
			if math.Abs(got-tt.expect) > 0.0001 {
				t.Errorf("DiscountedCost(%v, %v) = %v, want %v",
					tt.unitCost, tt.discount, got, tt.expect)
			}
		})
	}
}

func TestCalcSheetTotals(t *testing.T) {
	tests := []struct {
		name          string
		items         []LineItem
		expectTotal   float64
		expectPre     float64
		expectSavings float64
		expectPercent float64
	}{
		{
			name: "single discounted item",
			items: []LineItem{
				{Total: 45, PreDiscountTotal: 50},
			},
			expectTotal:   45,
			expectPre:     50,
			expectSavings: 5,
			expectPercent: 10,
		},
		{
			name: "multiple items",
			items: []LineItem{
				{Total: 45, PreDiscountTotal: 50},
				{Total: 30, PreDiscountTotal: 30},
			},
			expectTotal:   75,
			expectPre:     80,
			expectSavings: 5,
			expectPercent: 6.25,
		},
		{
			name:          "empty sheet",
			items:         nil,
			expectTotal:   0,
			expectPre:     0,
			expectSavings: 0,
			expectPercent: 0, // division by zero guarded
		},
		{
			name: "zero pre-discount total",
			items: []LineItem{
				{Total: 0, PreDiscountTotal: 0},
			},
			expectPercent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcSheetTotals(tt.items)
			if math.Abs(got.TotalCost-tt.expectTotal) > 0.001 {
				t.Errorf("TotalCost = %v, want %v", got.TotalCost, tt.expectTotal)
			}
			if math.Abs(got.PreDiscountTotal-tt.expectPre) > 0.001 {
				t.Errorf("PreDiscountTotal = %v, want %v", got.PreDiscountTotal, tt.expectPre)
			}
			if math.Abs(got.Savings-tt.expectSavings) > 0.001 {
				t.Errorf("Savings = %v, want %v", got.Savings, tt.expectSavings)
			}
			if math.Abs(got.SavingsPercent-tt.expectPercent) > 0.001 {
				t.Errorf("SavingsPercent = %v, want %v", got.SavingsPercent, tt.expectPercent)
			}
		})
	}
}
