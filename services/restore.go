package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// restoreRequiredColumns must be present in a project CSV for restore.
var restoreRequiredColumns = []string{
	"Manufacturer", "Product Type", "Product Code", "Description",
	"Unit Cost (£)", "Quantity",
}

// RestoreSheet rebuilds a cost sheet from a previously exported CSV.
// Derived money columns in the file are ignored and recomputed from unit
// cost, discount and quantity, so a stale or hand-edited export cannot
// smuggle in inconsistent totals. Missing Discount defaults to 0, missing
// Group to "Other" and missing Supplier to empty; the project name is taken
// from the first row's Project column when present.
func RestoreSheet(file io.Reader) (*CostSheet, error) {
	headers, rows, err := parseCSV(file)
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		columns[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, name := range restoreRequiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("file is not a cost sheet export (missing columns: %s)",
			strings.Join(missing, ", "))
	}

	sheet := NewCostSheet()

	for rowIdx, row := range rows {
		rowNum := rowIdx + 2
		cell := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		unitCost, err := strconv.ParseFloat(cell("Unit Cost (£)"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: unit cost %q is not a number", rowNum, cell("Unit Cost (£)"))
		}

		quantity, err := strconv.Atoi(cell("Quantity"))
		if err != nil {
			return nil, fmt.Errorf("row %d: quantity %q is not a whole number", rowNum, cell("Quantity"))
		}

		discount := 0.0
		if raw := cell("Discount (%)"); raw != "" {
			discount, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: discount %q is not a number", rowNum, raw)
			}
		}

		group := cell("Group")
		if group == "" {
			group = "Other"
		}

		if rowIdx == 0 {
			sheet.ProjectName = cell("Project")
		}

		sheet.Add(Product{
			Manufacturer: cell("Manufacturer"),
			ProductType:  cell("Product Type"),
			Description:  cell("Description"),
			ProductCode:  cell("Product Code"),
			UnitCost:     unitCost,
		}, quantity, group, cell("Supplier"), discount)
	}

	return sheet, nil
}
