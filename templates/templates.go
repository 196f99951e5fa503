// Package templates holds the templ components and their view-data structs.
// Run `templ generate` (or `go generate ./...`) to produce the *_templ.go
// files the handlers compile against.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@latest generate

import "costestimation/services"

// EstimatePageData drives the main estimate page: the cascading product
// selectors plus the grouped cost-sheet grid.
type EstimatePageData struct {
	ProjectName   string
	Manufacturers []string
	Groups        []string
	Sheet         SheetData
}

// SheetData is the cost-sheet fragment re-rendered after every mutation.
type SheetData struct {
	Groups []services.ItemGroup
	Totals services.SheetTotals
}

// HasItems reports whether any group holds line items.
func (d SheetData) HasItems() bool {
	for _, g := range d.Groups {
		if len(g.Items) > 0 {
			return true
		}
	}
	return false
}

// OptionListData renders one <select> option list for the cascade.
type OptionListData struct {
	Placeholder string
	Options     []string
}

// ProductDetailData shows the resolved product's read-only fields and the
// add-to-sheet form.
type ProductDetailData struct {
	Product        services.Product
	DiscountedCost float64
	Groups         []string
}

// CatalogPageData drives the catalog management page.
type CatalogPageData struct {
	Products []services.Product
	Errors   map[string]string
}
