package collections_test

import (
	"testing"

	"costestimation/collections"
	"costestimation/testhelpers"
)

func TestSeed_CreatesStarterCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	col, _ := app.FindCollectionByNameOrId("products")
	products, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("query products error: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected seeded products")
	}

	found := false
	for _, p := range products {
		if p.GetString("product_code") == "AC-100" {
			found = true
			if p.GetFloat("unit_cost") != 10.00 {
				t.Errorf("AC-100 unit_cost = %v, want 10.00", p.GetFloat("unit_cost"))
			}
			if p.GetString("supplier") != "PipeLine Supplies" {
				t.Errorf("AC-100 supplier = %q, want %q", p.GetString("supplier"), "PipeLine Supplies")
			}
		}
	}
	if !found {
		t.Error("expected AC-100 in seeded catalog")
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	first := testhelpers.CountProducts(t, app)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}
	if got := testhelpers.CountProducts(t, app); got != first {
		t.Errorf("expected %d products after idempotent seed, got %d", first, got)
	}
}

func TestSeed_SkipsWhenDataExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestProduct(t, app, "Existing Co", "Widget", "Pre-existing widget", "EX-001", 1.00, 0)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	if got := testhelpers.CountProducts(t, app); got != 1 {
		t.Errorf("expected only the pre-existing product, got %d", got)
	}
}
