package services

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestTemplateCSV(t *testing.T) {
	out, err := TemplateCSV()
	if err != nil {
		t.Fatalf("TemplateCSV() error = %v", err)
	}
	got := strings.TrimSpace(string(out))
	want := "manufacturer,product_type,description,product_code,unit_cost,supplier,discount"
	if got != want {
		t.Errorf("TemplateCSV() = %q, want %q", got, want)
	}
}

func TestTemplateExcel(t *testing.T) {
	out, err := TemplateExcel()
	if err != nil {
		t.Fatalf("TemplateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(out))
	if err != nil {
		t.Fatalf("template is not valid Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Catalog")
	if err != nil {
		t.Fatalf("read template sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
	if rows[0][0] != "manufacturer" || rows[0][4] != "unit_cost" {
		t.Errorf("unexpected headers: %v", rows[0])
	}
}

func TestTemplateRoundTripsThroughImportValidation(t *testing.T) {
	// A file built from the template headers must pass column validation.
	columns, err := mapImportColumns(TemplateColumns())
	if err != nil {
		t.Fatalf("template headers rejected: %v", err)
	}
	if len(columns) != 7 {
		t.Errorf("expected 7 mapped columns, got %d", len(columns))
	}
}
