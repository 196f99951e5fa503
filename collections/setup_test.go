package collections_test

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"costestimation/collections"
	"costestimation/testhelpers"
)

func TestSetup_ProductsCollectionExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("products collection not found after Setup(): %v", err)
	}
	if col.Name != "products" {
		t.Errorf("expected collection name %q, got %q", "products", col.Name)
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	col, _ := app.FindCollectionByNameOrId("products")
	firstID := col.Id

	collections.Setup(app)

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("products collection missing after second Setup(): %v", err)
	}
	if col.Id != firstID {
		t.Errorf("products collection id changed after second Setup(): %s -> %s", firstID, col.Id)
	}
}

func TestSetup_ProductsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("products")

	requiredFields := []string{"manufacturer", "product_type", "description", "product_code"}
	optionalFields := []string{"unit_cost", "supplier", "discount", "created", "updated"}

	for _, f := range requiredFields {
		field := col.Fields.GetByName(f)
		if field == nil {
			t.Errorf("products: missing required field %q", f)
			continue
		}
		if tf, ok := field.(*core.TextField); ok && !tf.Required {
			t.Errorf("products.%s: expected Required=true", f)
		}
	}
	for _, f := range optionalFields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("products: missing field %q", f)
		}
	}
}

func TestSetup_ProductCodeUnique(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestProduct(t, app, "Acme Flow", "Valve", "2-inch ball valve", "AC-100", 10.00, 0)

	col, _ := app.FindCollectionByNameOrId("products")
	dup := core.NewRecord(col)
	dup.Set("manufacturer", "Acme Flow")
	dup.Set("product_type", "Valve")
	dup.Set("description", "Another valve")
	dup.Set("product_code", "AC-100")
	dup.Set("unit_cost", 12.00)

	if err := app.Save(dup); err == nil {
		t.Error("expected unique index to reject duplicate product_code")
	}
}
