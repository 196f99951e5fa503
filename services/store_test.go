package services

import (
	"errors"
	"testing"

	"costestimation/testhelpers"
)

func TestAddAndListProducts(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	err := AddProduct(app, Product{
		Manufacturer: "Acme", ProductType: "Valve", Description: "Ball valve",
		ProductCode: "AC-100", UnitCost: 10.00, Supplier: "PipeLine", Discount: 10,
	})
	if err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}

	products, err := ListProducts(app)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.ProductCode != "AC-100" || p.UnitCost != 10.00 || p.Discount != 10 {
		t.Errorf("unexpected product: %+v", p)
	}
}

func TestAddProduct_DuplicateCodeRejected(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProduct(t, app, "Acme", "Valve", "Ball valve", "AC-100", 10, 0)

	err := AddProduct(app, Product{
		Manufacturer: "Other", ProductType: "Valve", Description: "Different valve",
		ProductCode: "AC-100", UnitCost: 5,
	})
	if err == nil {
		t.Error("expected unique index to reject duplicate product_code")
	}
	if n := testhelpers.CountProducts(t, app); n != 1 {
		t.Errorf("expected 1 product, got %d", n)
	}
}

func TestUpdateProduct(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProduct(t, app, "Acme", "Valve", "Ball valve", "AC-100", 10, 0)

	err := UpdateProduct(app, "AC-100", Product{
		Manufacturer: "Acme", ProductType: "Valve", Description: "Ball valve v2",
		ProductCode: "AC-100", UnitCost: 11.50, Supplier: "New Supplier", Discount: 5,
	})
	if err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}

	products, _ := ListProducts(app)
	p := products[0]
	if p.Description != "Ball valve v2" || p.UnitCost != 11.50 || p.Supplier != "New Supplier" {
		t.Errorf("update not applied: %+v", p)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	err := UpdateProduct(app, "NOPE", Product{ProductCode: "NOPE"})
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProduct(t, app, "Acme", "Valve", "Ball valve", "AC-100", 10, 0)

	if err := DeleteProduct(app, "AC-100"); err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}
	if n := testhelpers.CountProducts(t, app); n != 0 {
		t.Errorf("expected empty catalog, got %d products", n)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	err := DeleteProduct(app, "NOPE")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
