package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

// importBatchSize is the number of rows committed per transaction during a
// catalog import. A failure mid-file keeps earlier batches committed and
// rolls back only the failing batch.
const importBatchSize = 500

// requiredImportColumns must all be present in an import file's header row.
var requiredImportColumns = []string{
	"manufacturer", "product_type", "description", "product_code", "unit_cost",
}

// optionalImportColumns are passed through when present and defaulted
// otherwise: supplier to "" and discount to 0.
var optionalImportColumns = []string{"supplier", "discount"}

// ImportResult reports how many rows a catalog import applied. When the
// import stops partway, Imported counts the rows in already-committed
// batches.
type ImportResult struct {
	Imported int
}

// ImportCatalog parses a CSV or xlsx catalog file and upserts its rows into
// the products collection, keyed on product_code. Rows are applied in
// batches of importBatchSize, one transaction per batch; the first bad row
// aborts its own batch and the remainder of the file, but batches already
// committed stay applied.
func ImportCatalog(app *pocketbase.PocketBase, file io.Reader, fileName string) (ImportResult, error) {
	headers, dataRows, err := parseImportFile(file, fileName)
	if err != nil {
		return ImportResult{}, err
	}

	columns, err := mapImportColumns(headers)
	if err != nil {
		return ImportResult{}, err
	}

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return ImportResult{}, fmt.Errorf("find products collection: %w", err)
	}

	result := ImportResult{}
	for start := 0; start < len(dataRows); start += importBatchSize {
		end := start + importBatchSize
		if end > len(dataRows) {
			end = len(dataRows)
		}

		if err := upsertBatch(app, col, columns, dataRows[start:end], start); err != nil {
			return result, fmt.Errorf("import stopped after %d rows: %w", result.Imported, err)
		}
		result.Imported += end - start
	}
	return result, nil
}

// parseImportFile reads headers and data rows from a CSV or xlsx file,
// chosen by file extension.
func parseImportFile(file io.Reader, fileName string) ([]string, [][]string, error) {
	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		return parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		return parseExcel(file)
	default:
		return nil, nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the
// first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// mapImportColumns maps header names to column indexes and verifies that
// every required column is present. Header matching is case-insensitive and
// ignores surrounding whitespace.
func mapImportColumns(headers []string) (map[string]int, error) {
	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		if norm == "" {
			continue
		}
		if _, exists := columns[norm]; !exists {
			columns[norm] = i
		}
	}

	var missing []string
	for _, name := range requiredImportColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("file must contain columns: %s (missing: %s)",
			strings.Join(requiredImportColumns, ", "), strings.Join(missing, ", "))
	}
	return columns, nil
}

// coerceImportRow turns one raw file row into a Product, validating and
// converting field values. rowNum is 1-indexed including the header row, so
// error messages match what the user sees in a spreadsheet.
func coerceImportRow(columns map[string]int, row []string, rowNum int) (Product, error) {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	p := Product{
		Manufacturer: cell("manufacturer"),
		ProductType:  cell("product_type"),
		Description:  cell("description"),
		ProductCode:  cell("product_code"),
		Supplier:     cell("supplier"),
	}
	if p.ProductCode == "" {
		return Product{}, fmt.Errorf("row %d: product_code is empty", rowNum)
	}

	unitCost, err := strconv.ParseFloat(cell("unit_cost"), 64)
	if err != nil {
		return Product{}, fmt.Errorf("row %d: unit_cost %q is not a number", rowNum, cell("unit_cost"))
	}
	if unitCost < 0 {
		return Product{}, fmt.Errorf("row %d: unit_cost must not be negative", rowNum)
	}
	p.UnitCost = unitCost

	// Missing or blank discount defaults to 0.
	if raw := cell("discount"); raw != "" {
		discount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Product{}, fmt.Errorf("row %d: discount %q is not a number", rowNum, raw)
		}
		if discount < 0 || discount > 100 {
			return Product{}, fmt.Errorf("row %d: discount must be between 0 and 100", rowNum)
		}
		p.Discount = discount
	}

	return p, nil
}

// upsertBatch applies one batch of rows inside a single transaction.
// Any coercion or save failure rolls the whole batch back.
func upsertBatch(app *pocketbase.PocketBase, col *core.Collection, columns map[string]int, rows [][]string, startOffset int) error {
	return app.RunInTransaction(func(txApp core.App) error {
		for i, row := range rows {
			rowNum := startOffset + i + 2 // 1-indexed + header row

			p, err := coerceImportRow(columns, row, rowNum)
			if err != nil {
				return err
			}

			record, err := txApp.FindFirstRecordByFilter("products",
				"product_code = {:code}", map[string]any{"code": p.ProductCode})
			if err != nil {
				record = core.NewRecord(col)
			}

			setProductFields(record, p)
			if err := txApp.Save(record); err != nil {
				return fmt.Errorf("row %d: save product %q: %w", rowNum, p.ProductCode, err)
			}
		}
		return nil
	})
}
