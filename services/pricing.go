package services

// DiscountedCost applies a percentage discount to a unit cost.
func DiscountedCost(unitCost, discount float64) float64 {
	return unitCost * (1 - discount/100)
}

// SheetTotals holds the aggregate figures for a cost sheet.
type SheetTotals struct {
	TotalCost        float64
	PreDiscountTotal float64
	Savings          float64
	SavingsPercent   float64
}

// CalcSheetTotals sums the per-item totals from scratch. Recomputing on
// every call keeps the aggregates consistent with the items after any
// sequence of mutations.
func CalcSheetTotals(items []LineItem) SheetTotals {
	var totals SheetTotals
	for _, item := range items {
		totals.TotalCost += item.Total
		totals.PreDiscountTotal += item.PreDiscountTotal
	}
	totals.Savings = totals.PreDiscountTotal - totals.TotalCost
	if totals.PreDiscountTotal != 0 {
		totals.SavingsPercent = (totals.Savings / totals.PreDiscountTotal) * 100
	}
	return totals
}
