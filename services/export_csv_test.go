package services

import (
	"encoding/csv"
	"math"
	"sort"
	"strings"
	"testing"
	"time"
)

func exportFixture() *CostSheet {
	sheet := NewCostSheet()
	sheet.ProjectName = "Office Refit"
	sheet.Add(Product{
		Manufacturer: "Acme", ProductType: "Valve", Description: "2-inch ball valve",
		ProductCode: "AC-100", UnitCost: 10.00,
	}, 5, "Plant Room", "PipeLine", 10)
	sheet.Add(Product{
		Manufacturer: "Brightline", ProductType: "Luminaire", Description: "LED panel 600x600",
		ProductCode: "BL-3600", UnitCost: 28.99,
	}, 12, "Ground Floor", "Lux Trade", 15)
	sheet.Add(Product{
		Manufacturer: "Acme", ProductType: "Fitting", Description: "Elbow 90",
		ProductCode: "AC-330", UnitCost: 3.15,
	}, 4, "Plant Room", "", 0)
	return sheet
}

func TestExportCSV_Layout(t *testing.T) {
	sheet := exportFixture()
	out, err := ExportCSV(BuildExportData(sheet, time.Now()))
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Project" || rows[0][1] != "Group" || rows[0][2] != "Supplier" {
		t.Errorf("unexpected leading headers: %v", rows[0][:3])
	}

	// Project name on the first data row only.
	if rows[1][0] != "Office Refit" {
		t.Errorf("first row project = %q, want 'Office Refit'", rows[1][0])
	}
	if rows[2][0] != "" || rows[3][0] != "" {
		t.Error("project name should only appear on the first data row")
	}

	if rows[1][1] != "Plant Room" || rows[1][5] != "AC-100" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
}

func TestExportCSV_Empty(t *testing.T) {
	out, err := ExportCSV(BuildExportData(NewCostSheet(), time.Now()))
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}

func TestRestoreSheet_RoundTrip(t *testing.T) {
	original := exportFixture()
	out, err := ExportCSV(BuildExportData(original, time.Now()))
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	restored, err := RestoreSheet(strings.NewReader(string(out)))
	if err != nil {
		t.Fatalf("RestoreSheet() error = %v", err)
	}

	if restored.ProjectName != "Office Refit" {
		t.Errorf("ProjectName = %q, want 'Office Refit'", restored.ProjectName)
	}

	origItems := append([]LineItem(nil), original.Items()...)
	restItems := append([]LineItem(nil), restored.Items()...)
	if len(restItems) != len(origItems) {
		t.Fatalf("restored %d items, want %d", len(restItems), len(origItems))
	}

	byCode := func(items []LineItem) {
		sort.Slice(items, func(i, j int) bool { return items[i].ProductCode < items[j].ProductCode })
	}
	byCode(origItems)
	byCode(restItems)

	for i := range origItems {
		want, got := origItems[i], restItems[i]
		if got.Manufacturer != want.Manufacturer || got.ProductType != want.ProductType ||
			got.ProductCode != want.ProductCode || got.Description != want.Description ||
			got.Group != want.Group || got.Supplier != want.Supplier ||
			got.Quantity != want.Quantity {
			t.Errorf("item %d mismatch: got %+v, want %+v", i, got, want)
		}
		if math.Abs(got.Total-want.Total) > 0.005 {
			t.Errorf("item %d total = %v, want %v", i, got.Total, want.Total)
		}
	}

	// Known groups rebuilt from observed values.
	groups := restored.Groups()
	if len(groups) != 2 {
		t.Errorf("restored groups = %v, want 2 entries", groups)
	}
}

func TestRestoreSheet_Defaults(t *testing.T) {
	input := "Manufacturer,Product Type,Product Code,Description,Unit Cost (£),Quantity\n" +
		"Acme,Valve,AC-100,Ball valve,10.00,3\n"

	sheet, err := RestoreSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("RestoreSheet() error = %v", err)
	}

	items := sheet.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.Discount != 0 {
		t.Errorf("Discount = %v, want 0", item.Discount)
	}
	if item.Group != "Other" {
		t.Errorf("Group = %q, want 'Other'", item.Group)
	}
	if item.Supplier != "" {
		t.Errorf("Supplier = %q, want empty", item.Supplier)
	}
	if sheet.ProjectName != "" {
		t.Errorf("ProjectName = %q, want empty", sheet.ProjectName)
	}
}

func TestRestoreSheet_RecomputesDerivedColumns(t *testing.T) {
	// Total and Discounted Cost columns are deliberately wrong; restore must
	// recompute them instead of trusting the file.
	input := "Group,Supplier,Manufacturer,Product Type,Product Code,Description," +
		"Unit Cost (£),Discount (%),Discounted Cost (£),Quantity,Total (£),Pre-Discount Total (£)\n" +
		"Attic,,Acme,Valve,AC-100,Ball valve,10.00,10.00,999.00,5,999.00,999.00\n"

	sheet, err := RestoreSheet(strings.NewReader(input))
	if err != nil {
		t.Fatalf("RestoreSheet() error = %v", err)
	}

	item := sheet.Items()[0]
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

func TestRestoreSheet_MissingColumns(t *testing.T) {
	input := "Manufacturer,Quantity\nAcme,3\n"
	_, err := RestoreSheet(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	if !strings.Contains(err.Error(), "Product Code") {
		t.Errorf("error should name missing columns, got: %v", err)
	}
}

func TestRestoreSheet_BadQuantity(t *testing.T) {
	input := "Manufacturer,Product Type,Product Code,Description,Unit Cost (£),Quantity\n" +
		"Acme,Valve,AC-100,Ball valve,10.00,lots\n"
	_, err := RestoreSheet(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for bad quantity")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("error should name the row, got: %v", err)
	}
}
