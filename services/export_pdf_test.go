package services

import (
	"testing"
	"time"
)

func TestGeneratePDF_GroupedSheet(t *testing.T) {
	data := BuildExportData(exportFixture(), time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGeneratePDF_Empty(t *testing.T) {
	data := BuildExportData(NewCostSheet(), time.Now())

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}

func TestExportDataTitle(t *testing.T) {
	sheet := NewCostSheet()
	data := BuildExportData(sheet, time.Now())
	if data.Title() != "Cost Estimation" {
		t.Errorf("Title() = %q, want 'Cost Estimation'", data.Title())
	}

	sheet.ProjectName = "Office Refit"
	data = BuildExportData(sheet, time.Now())
	if data.Title() != "Cost Estimation: Office Refit" {
		t.Errorf("Title() = %q", data.Title())
	}
}

func TestBuildExportData_Timestamp(t *testing.T) {
	data := BuildExportData(NewCostSheet(), time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	if data.GeneratedAt != "2026-03-14 09:30" {
		t.Errorf("GeneratedAt = %q, want '2026-03-14 09:30'", data.GeneratedAt)
	}
}
