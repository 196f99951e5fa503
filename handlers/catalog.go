package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"costestimation/services"
	"costestimation/templates"
)

// HandleCatalogPage renders the catalog management page.
func HandleCatalogPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderCatalog(app, e, nil)
	}
}

// HandleProductSave validates the add-product form and inserts the product.
// Validation failures re-render the page with per-field messages.
func HandleProductSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		p := services.Product{
			Manufacturer: strings.TrimSpace(e.Request.FormValue("manufacturer")),
			ProductType:  strings.TrimSpace(e.Request.FormValue("product_type")),
			Description:  strings.TrimSpace(e.Request.FormValue("description")),
			ProductCode:  strings.TrimSpace(e.Request.FormValue("product_code")),
			Supplier:     strings.TrimSpace(e.Request.FormValue("supplier")),
		}

		formErrors := map[string]string{}
		if p.Manufacturer == "" {
			formErrors["manufacturer"] = "Manufacturer is required"
		}
		if p.ProductType == "" {
			formErrors["product_type"] = "Product type is required"
		}
		if p.Description == "" {
			formErrors["description"] = "Description is required"
		}
		if p.ProductCode == "" {
			formErrors["product_code"] = "Product code is required"
		}

		unitCost, err := strconv.ParseFloat(e.Request.FormValue("unit_cost"), 64)
		switch {
		case err != nil:
			formErrors["unit_cost"] = "Unit cost must be a number"
		case unitCost < 0:
			formErrors["unit_cost"] = "Unit cost cannot be negative"
		default:
			p.UnitCost = unitCost
		}

		if raw := e.Request.FormValue("discount"); raw != "" {
			discount, err := strconv.ParseFloat(raw, 64)
			if err != nil || discount < 0 || discount > 100 {
				formErrors["discount"] = "Discount must be between 0 and 100"
			} else {
				p.Discount = discount
			}
		}

		if len(formErrors) > 0 {
			return renderCatalog(app, e, formErrors)
		}

		if err := services.AddProduct(app, p); err != nil {
			log.Printf("catalog: could not save product %q: %v", p.ProductCode, err)
			formErrors["product_code"] = "Product code must be unique"
			return renderCatalog(app, e, formErrors)
		}

		return e.Redirect(http.StatusFound, "/catalog")
	}
}

// HandleProductDelete removes one product by code. Responds with an empty
// body so HTMX drops the deleted row.
func HandleProductDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		code := e.Request.PathValue("code")
		if err := services.DeleteProduct(app, code); err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				return ErrorToast(e, http.StatusNotFound, "Product not found")
			}
			log.Printf("catalog: could not delete product %q: %v", code, err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}
		SuccessToast(e, fmt.Sprintf("Deleted %s", code))
		return e.String(http.StatusOK, "")
	}
}

// HandleCatalogImport accepts a CSV or Excel upload and upserts its rows
// into the catalog.
func HandleCatalogImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.String(http.StatusBadRequest, "Please choose a file to import")
		}
		defer file.Close()

		result, err := services.ImportCatalog(app, file, header.Filename)
		if err != nil {
			log.Printf("catalog: import of %q failed: %v", header.Filename, err)
			return e.String(http.StatusBadRequest, fmt.Sprintf("Import failed: %v", err))
		}

		log.Printf("catalog: imported %d products from %q", result.Imported, header.Filename)
		return e.Redirect(http.StatusFound, "/catalog")
	}
}

// HandleTemplateCSV downloads an empty import template with the expected
// header row.
func HandleTemplateCSV() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		out, err := services.TemplateCSV()
		if err != nil {
			log.Printf("catalog: csv template generation failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}
		setDownloadHeaders(e, "text/csv", "catalog-template.csv")
		e.Response.Write(out)
		return nil
	}
}

// HandleTemplateExcel downloads the Excel variant of the import template.
func HandleTemplateExcel() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		out, err := services.TemplateExcel()
		if err != nil {
			log.Printf("catalog: excel template generation failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}
		setDownloadHeaders(e, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"catalog-template.xlsx")
		e.Response.Write(out)
		return nil
	}
}

func renderCatalog(app *pocketbase.PocketBase, e *core.RequestEvent, formErrors map[string]string) error {
	products, err := services.ListProducts(app)
	if err != nil {
		log.Printf("catalog: could not load products: %v", err)
		return e.String(http.StatusInternalServerError, "Internal error")
	}
	component := templates.CatalogPage(templates.CatalogPageData{
		Products: products,
		Errors:   formErrors,
	})
	return component.Render(e.Request.Context(), e.Response)
}
