package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type productDef struct {
	manufacturer string
	productType  string
	description  string
	productCode  string
	unitCost     float64
	supplier     string
	discount     float64
}

var starterCatalog = []productDef{
	{"Acme Flow", "Valve", "2-inch ball valve, brass", "AC-100", 10.00, "PipeLine Supplies", 10},
	{"Acme Flow", "Valve", "3-inch gate valve, cast iron", "AC-210", 24.50, "PipeLine Supplies", 10},
	{"Acme Flow", "Fitting", "2-inch elbow, 90 degree", "AC-330", 3.15, "PipeLine Supplies", 0},
	{"Brightline", "Luminaire", "LED panel 600x600, 36W", "BL-3600", 28.99, "Lux Trade", 15},
	{"Brightline", "Luminaire", "LED batten 1500mm, 50W", "BL-1550", 19.75, "Lux Trade", 15},
	{"Brightline", "Driver", "Dimmable driver 40W, DALI", "BL-D40", 14.20, "Lux Trade", 0},
	{"CoreTherm", "Radiator", "Double panel radiator 600x1000", "CT-6010", 89.00, "HeatHub", 5},
	{"CoreTherm", "Radiator", "Towel rail 1200x500, chrome", "CT-TR12", 64.30, "HeatHub", 5},
	{"CoreTherm", "Control", "Thermostatic radiator valve", "CT-TRV1", 12.45, "", 0},
}

// Seed populates the catalog with a small starter product set. It is safe
// to call on every startup because it returns early if any product records
// already exist.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query products: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	for _, def := range starterCatalog {
		record := core.NewRecord(col)
		record.Set("manufacturer", def.manufacturer)
		record.Set("product_type", def.productType)
		record.Set("description", def.description)
		record.Set("product_code", def.productCode)
		record.Set("unit_cost", def.unitCost)
		record.Set("supplier", def.supplier)
		record.Set("discount", def.discount)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save product %q: %w", def.productCode, err)
		}
	}
	return nil
}
