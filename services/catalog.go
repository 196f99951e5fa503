// Package services provides catalog, cost sheet and export logic for the
// cost estimation tool.
package services

import (
	"fmt"
	"sort"
)

// Product is a single catalog entry. ProductCode is unique across the catalog.
type Product struct {
	Manufacturer string
	ProductType  string
	Description  string
	ProductCode  string
	UnitCost     float64
	Supplier     string
	Discount     float64
}

// CompositeDescription returns the description suffixed with the product code.
// Selection lists use it to disambiguate identical descriptions with
// different codes.
func CompositeDescription(p Product) string {
	return fmt.Sprintf("%s (%s)", p.Description, p.ProductCode)
}

// Manufacturers returns the sorted unique manufacturer names in the catalog.
func Manufacturers(products []Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if !seen[p.Manufacturer] {
			seen[p.Manufacturer] = true
			out = append(out, p.Manufacturer)
		}
	}
	sort.Strings(out)
	return out
}

// ProductTypes returns the sorted unique product types for one manufacturer.
func ProductTypes(products []Product, manufacturer string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if p.Manufacturer != manufacturer {
			continue
		}
		if !seen[p.ProductType] {
			seen[p.ProductType] = true
			out = append(out, p.ProductType)
		}
	}
	sort.Strings(out)
	return out
}

// Descriptions returns the sorted composite descriptions for all products
// matching the given manufacturer and product type.
func Descriptions(products []Product, manufacturer, productType string) []string {
	var out []string
	for _, p := range products {
		if p.Manufacturer == manufacturer && p.ProductType == productType {
			out = append(out, CompositeDescription(p))
		}
	}
	sort.Strings(out)
	return out
}

// Resolve maps a composite description back to the full product record.
// It returns the first product whose manufacturer, product type and
// composite description all match, or false if none does.
func Resolve(products []Product, manufacturer, productType, composite string) (Product, bool) {
	for _, p := range products {
		if p.Manufacturer == manufacturer &&
			p.ProductType == productType &&
			CompositeDescription(p) == composite {
			return p, true
		}
	}
	return Product{}, false
}
