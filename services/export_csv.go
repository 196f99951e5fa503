package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// csvExportHeader is the column layout of an exported cost sheet. The
// restore path reads these same headers back, so the two must stay in sync.
var csvExportHeader = []string{
	"Project",
	"Group",
	"Supplier",
	"Manufacturer",
	"Product Type",
	"Product Code",
	"Description",
	"Unit Cost (£)",
	"Discount (%)",
	"Discounted Cost (£)",
	"Quantity",
	"Total (£)",
	"Pre-Discount Total (£)",
}

// ExportCSV flattens the cost sheet to a delimited table. The project name
// is written in the Project column of the first data row only; restore
// reads it back from there.
func ExportCSV(data ExportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvExportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for i, item := range data.Items {
		project := ""
		if i == 0 {
			project = data.ProjectName
		}
		row := []string{
			project,
			item.Group,
			item.Supplier,
			item.Manufacturer,
			item.ProductType,
			item.ProductCode,
			item.Description,
			FormatMoney(item.UnitCost),
			FormatMoney(item.Discount),
			FormatMoney(item.DiscountedCost),
			strconv.Itoa(item.Quantity),
			FormatMoney(item.Total),
			FormatMoney(item.PreDiscountTotal),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i+2, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
