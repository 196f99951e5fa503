package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// excelColumns are the cell columns used by the cost sheet export,
// A through I.
var excelColumns = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

var excelHeaders = []string{
	"Product Code", "Manufacturer", "Description", "Unit Cost (£)",
	"Discount (%)", "Discounted (£)", "Qty", "Total (£)", "Pre-Disc Total (£)",
}

// GenerateExcel renders the cost sheet as an xlsx workbook: one section per
// group with a trailing subtotal row, followed by the overall summary.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Cost Sheet"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	lastCol := excelColumns[len(excelColumns)-1]

	widths := []float64{14, 16, 42, 12, 12, 13, 7, 13, 15}
	for i, col := range excelColumns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	groupStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return nil, fmt.Errorf("create group style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	subtotalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#EFEFEF"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create subtotal style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Title Rows ──────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title()))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Generated: "+data.GeneratedAt)

	// ── Group Sections ──────────────────────────────────────────────────

	row := 4
	for _, group := range data.Groups {
		rowStr := fmt.Sprintf("%d", row)
		if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
			return nil, fmt.Errorf("merge group header: %w", err)
		}
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell("Group: "+group.Name))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, groupStyle)
		row++

		rowStr = fmt.Sprintf("%d", row)
		for i, h := range excelHeaders {
			f.SetCellValue(sheetName, excelColumns[i]+rowStr, h)
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, headerStyle)
		row++

		for _, item := range group.Items {
			rowStr = fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(item.ProductCode))
			f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(item.Manufacturer))
			f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(item.Description))
			f.SetCellValue(sheetName, "D"+rowStr, item.UnitCost)
			f.SetCellValue(sheetName, "E"+rowStr, item.Discount)
			f.SetCellValue(sheetName, "F"+rowStr, item.DiscountedCost)
			f.SetCellValue(sheetName, "G"+rowStr, item.Quantity)
			f.SetCellValue(sheetName, "H"+rowStr, item.Total)
			f.SetCellValue(sheetName, "I"+rowStr, item.PreDiscountTotal)
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)
			row++
		}

		rowStr = fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "G"+rowStr, "Group Total:")
		f.SetCellValue(sheetName, "H"+rowStr, group.Subtotal)
		f.SetCellValue(sheetName, "I"+rowStr, group.PreDiscountSubtotal)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, subtotalStyle)
		row += 2
	}

	// ── Summary ─────────────────────────────────────────────────────────

	summary := []struct {
		label string
		value string
	}{
		{"Total Cost (After Discounts)", FormatGBP(data.Totals.TotalCost)},
		{"Pre-Discount Total Cost", FormatGBP(data.Totals.PreDiscountTotal)},
		{fmt.Sprintf("Total Savings (%.1f%%)", data.Totals.SavingsPercent), FormatGBP(data.Totals.Savings)},
	}
	for _, s := range summary {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "F"+rowStr, s.label)
		if err := f.MergeCell(sheetName, "F"+rowStr, "G"+rowStr); err != nil {
			return nil, fmt.Errorf("merge summary label: %w", err)
		}
		f.SetCellStyle(sheetName, "F"+rowStr, "G"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "H"+rowStr, s.value)
		f.SetCellStyle(sheetName, "H"+rowStr, "H"+rowStr, summaryValueStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
