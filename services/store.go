package services

import (
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ErrProductNotFound is returned when an update or delete targets a product
// code that does not exist in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ListProducts loads the full catalog from the products collection.
func ListProducts(app *pocketbase.PocketBase) ([]Product, error) {
	records, err := app.FindAllRecords("products")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]Product, 0, len(records))
	for _, r := range records {
		products = append(products, productFromRecord(r))
	}
	return products, nil
}

// AddProduct inserts a new catalog record. A duplicate product code is
// rejected by the unique index and surfaced as an error.
func AddProduct(app *pocketbase.PocketBase, p Product) error {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("find products collection: %w", err)
	}

	record := core.NewRecord(col)
	setProductFields(record, p)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save product %q: %w", p.ProductCode, err)
	}
	return nil
}

// UpdateProduct overwrites every field of the record matching code.
// The update is restricted to the enumerated product fields; nothing else
// on the record is touched.
func UpdateProduct(app *pocketbase.PocketBase, code string, p Product) error {
	record, err := findProductRecord(app, code)
	if err != nil {
		return err
	}

	setProductFields(record, p)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("update product %q: %w", code, err)
	}
	return nil
}

// DeleteProduct removes the record matching code from the catalog.
func DeleteProduct(app *pocketbase.PocketBase, code string) error {
	record, err := findProductRecord(app, code)
	if err != nil {
		return err
	}

	if err := app.Delete(record); err != nil {
		return fmt.Errorf("delete product %q: %w", code, err)
	}
	return nil
}

func findProductRecord(app core.App, code string) (*core.Record, error) {
	record, err := app.FindFirstRecordByFilter("products",
		"product_code = {:code}", map[string]any{"code": code})
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", code, ErrProductNotFound)
	}
	return record, nil
}

// setProductFields writes the full product field list onto a record.
// Kept as the single place that enumerates writable fields so imports and
// manual edits cannot drift apart.
func setProductFields(record *core.Record, p Product) {
	record.Set("manufacturer", p.Manufacturer)
	record.Set("product_type", p.ProductType)
	record.Set("description", p.Description)
	record.Set("product_code", p.ProductCode)
	record.Set("unit_cost", p.UnitCost)
	record.Set("supplier", p.Supplier)
	record.Set("discount", p.Discount)
}

func productFromRecord(r *core.Record) Product {
	return Product{
		Manufacturer: r.GetString("manufacturer"),
		ProductType:  r.GetString("product_type"),
		Description:  r.GetString("description"),
		ProductCode:  r.GetString("product_code"),
		UnitCost:     r.GetFloat("unit_cost"),
		Supplier:     r.GetString("supplier"),
		Discount:     r.GetFloat("discount"),
	}
}
