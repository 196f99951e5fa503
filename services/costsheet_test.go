package services

import (
	"math"
	"testing"
)

func ballValve() Product {
	return Product{
		Manufacturer: "Acme",
		ProductType:  "Valve",
		Description:  "2-inch ball valve",
		ProductCode:  "AC-100",
		UnitCost:     10.00,
		Supplier:     "PipeLine",
		Discount:     10,
	}
}

func TestAdd_ComputesDerivedFields(t *testing.T) {
	sheet := NewCostSheet()
	sheet.Add(ballValve(), 5, "Plant Room", "PipeLine", 10)

	items := sheet.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if math.Abs(item.DiscountedCost-9.00) > 0.001 {
		t.Errorf("DiscountedCost = %v, want 9.00", item.DiscountedCost)
	}
	if math.Abs(item.Total-45.00) > 0.001 {
		t.Errorf("Total = %v, want 45.00", item.Total)
	}
	if math.Abs(item.PreDiscountTotal-50.00) > 0.001 {
		t.Errorf("PreDiscountTotal = %v, want 50.00", item.PreDiscountTotal)
	}
}

func TestAdd_MergesSameIdentity(t *testing.T) {
	sheet := NewCostSheet()
	sheet.Add(ballValve(), 2, "Plant Room", "PipeLine", 10)
	sheet.Add(ballValve(), 3, "Plant Room", "PipeLine", 10)

	items := sheet.Items()
	if len(items) != 1 {
		t.Fatalf("expected merge into 1 item, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", items[0].Quantity)
	}
	if math.Abs(items[0].Total-items[0].DiscountedCost*5) > 0.001 {
		t.Errorf("Total = %v, want discounted cost x 5", items[0].Total)
	}
}

func TestAdd_DifferentGroupOrSupplierStaysSeparate(t *testing.T) {
	sheet := NewCostSheet()
	sheet.Add(ballValve(), 1, "Plant Room", "PipeLine", 10)
	sheet.Add(ballValve(), 1, "Basement", "PipeLine", 10)
	sheet.Add(ballValve(), 1, "Plant Room", "Other Supplier", 10)

	if len(sheet.Items()) != 3 {
		t.Fatalf("expected 3 separate items, got %d", len(sheet.Items()))
	}
}

func TestAdd_RegistersGroups(t *testing.T) {
	sheet := NewCostSheet()
	sheet.Add(ballValve(), 1, "Plant Room", "", 0)
	sheet.Add(ballValve(), 1, "Basement", "", 0)
	sheet.Add(ballValve(), 1, "Plant Room", "", 0)

	groups := sheet.Groups()
	if len(groups) != 2 || groups[0] != "Plant Room" || groups[1] != "Basement" {
		t.Errorf("Groups() = %v, want [Plant Room Basement]", groups)
	}
}

func TestSetQuantity(t *testing.T) {
	sheet := NewCostSheet()
	sheet.Add(ballValve(), 5, "Plant Room", "PipeLine", 10)
	id := sheet.Items()[0].ID

	if err := sheet.SetQuantity(id, 2); err != nil {
		t.Fatalf("SetQuantity() error = %v", err)
	}
	item := sheet.Items()[0]
	if item.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", item.Quantity)
	}
	if math.Abs(item.Total-18.00) > 0.001 {
		t.Errorf("Total = %v, want 18.00", item.Total)
	}
	if math.Abs(item.PreDiscountTotal-20.00) > 0.001 {
		t.Errorf("PreDiscountTotal = %v, want 20.00", item.PreDiscountTotal)
	}
}

func TestSetQuantity_RejectsBelowOne(t *testing.T) {
	sheet := NewCostSheet()
	sheet.Add(ballValve(), 5, "Plant Room", "PipeLine", 10)
	id := sheet.Items()[0].ID

	if err := sheet.SetQuantity(id, 0); err == nil {
		t.Error("expected error for quantity 0")
	}
	if sheet.Items()[0].Quantity != 5 {
		t.Errorf("quantity changed after rejected update: %d", sheet.Items()[0].Quantity)
	}
}

func TestSetQuantity_UnknownID(t *testing.T) {
	sheet := NewCostSheet()
	if err := sheet.SetQuantity(99, 2); err == nil {
		t.Error("expected error for unknown line item")
	}
}

func TestRemove(t *testing.T) {
	sheet := NewCostSheet()
	sheet.Add(ballValve(), 1, "Plant Room", "", 0)
	other := ballValve()
	other.ProductCode = "AC-101"
	sheet.Add(other, 2, "Plant Room", "", 0)

	sheet.Remove([]int{sheet.Items()[0].ID})

	items := sheet.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item after remove, got %d", len(items))
	}
	if items[0].ProductCode != "AC-101" {
		t.Errorf("wrong item removed, remaining code = %q", items[0].ProductCode)
	}
}

func TestClear(t *testing.T) {
	sheet := NewCostSheet()
	sheet.Add(ballValve(), 3, "Plant Room", "", 10)
	sheet.Clear()

	if len(sheet.Items()) != 0 {
		t.Errorf("expected empty sheet, got %d items", len(sheet.Items()))
	}
	totals := sheet.Totals()
	if totals.TotalCost != 0 || totals.PreDiscountTotal != 0 {
		t.Errorf("expected zero totals after clear, got %+v", totals)
	}
}

func TestTotals_TrackMutations(t *testing.T) {
	sheet := NewCostSheet()
	sheet.Add(ballValve(), 5, "Plant Room", "PipeLine", 10)
	other := ballValve()
	other.ProductCode = "AC-101"
	other.UnitCost = 20
	sheet.Add(other, 1, "Basement", "PipeLine", 0)

	checkTotalsMatchItems := func() {
		t.Helper()
		var wantTotal, wantPre float64
		for _, item := range sheet.Items() {
			wantTotal += item.Total
			wantPre += item.PreDiscountTotal
		}
		totals := sheet.Totals()
		if math.Abs(totals.TotalCost-wantTotal) > 0.001 {
			t.Errorf("TotalCost = %v, want %v", totals.TotalCost, wantTotal)
		}
		if math.Abs(totals.PreDiscountTotal-wantPre) > 0.001 {
			t.Errorf("PreDiscountTotal = %v, want %v", totals.PreDiscountTotal, wantPre)
		}
	}

	checkTotalsMatchItems()
	sheet.SetQuantity(sheet.Items()[0].ID, 2)
	checkTotalsMatchItems()
	sheet.Remove([]int{sheet.Items()[1].ID})
	checkTotalsMatchItems()
}

func TestGrouped(t *testing.T) {
	sheet := NewCostSheet()
	sheet.Add(ballValve(), 5, "Plant Room", "PipeLine", 10) // 45.00 / 50.00
	other := ballValve()
	other.ProductCode = "AC-101"
	other.Discount = 0
	sheet.Add(other, 1, "Basement", "PipeLine", 0) // 10.00 / 10.00
	third := ballValve()
	third.ProductCode = "AC-102"
	third.Discount = 0
	sheet.Add(third, 2, "Plant Room", "PipeLine", 0) // 20.00 / 20.00

	groups := sheet.Grouped()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "Plant Room" || groups[1].Name != "Basement" {
		t.Errorf("group order = [%s %s], want [Plant Room Basement]", groups[0].Name, groups[1].Name)
	}
	if len(groups[0].Items) != 2 {
		t.Errorf("Plant Room items = %d, want 2", len(groups[0].Items))
	}
	if math.Abs(groups[0].Subtotal-65.00) > 0.001 {
		t.Errorf("Plant Room subtotal = %v, want 65.00", groups[0].Subtotal)
	}
	if math.Abs(groups[0].PreDiscountSubtotal-70.00) > 0.001 {
		t.Errorf("Plant Room pre-discount subtotal = %v, want 70.00", groups[0].PreDiscountSubtotal)
	}
}
