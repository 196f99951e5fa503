package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"costestimation/services"
	"costestimation/templates"
)

// HandleEstimatePage renders the main estimate page: cascading product
// selectors plus the current session's cost sheet.
func HandleEstimatePage(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		products, err := services.ListProducts(app)
		if err != nil {
			log.Printf("estimate: could not load catalog: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		sheet := store.Sheet(e)
		data := templates.EstimatePageData{
			ProjectName:   sheet.ProjectName,
			Manufacturers: services.Manufacturers(products),
			Groups:        sheet.Groups(),
			Sheet:         sheetData(sheet),
		}
		component := templates.EstimatePage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleProductTypeOptions renders the product-type select for the chosen
// manufacturer.
func HandleProductTypeOptions(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		manufacturer := e.Request.URL.Query().Get("manufacturer")

		var options []string
		if manufacturer != "" {
			products, err := services.ListProducts(app)
			if err != nil {
				log.Printf("estimate: could not load catalog: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
			options = services.ProductTypes(products, manufacturer)
		}

		component := templates.OptionList("product_type", templates.OptionListData{
			Placeholder: "Search product type...",
			Options:     options,
		})
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleDescriptionOptions renders the composite-description select for the
// chosen manufacturer and product type.
func HandleDescriptionOptions(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query()
		manufacturer := query.Get("manufacturer")
		productType := query.Get("product_type")

		var options []string
		if manufacturer != "" && productType != "" {
			products, err := services.ListProducts(app)
			if err != nil {
				log.Printf("estimate: could not load catalog: %v", err)
				return e.String(http.StatusInternalServerError, "Internal error")
			}
			options = services.Descriptions(products, manufacturer, productType)
		}

		component := templates.OptionList("description", templates.OptionListData{
			Placeholder: "Search description...",
			Options:     options,
		})
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleProductDetail resolves the selected composite description and
// renders the read-only product fields with the add-to-sheet form.
func HandleProductDetail(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query()
		manufacturer := query.Get("manufacturer")
		productType := query.Get("product_type")
		description := query.Get("description")
		if manufacturer == "" || productType == "" || description == "" {
			return e.String(http.StatusOK, "")
		}

		products, err := services.ListProducts(app)
		if err != nil {
			log.Printf("estimate: could not load catalog: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		product, ok := services.Resolve(products, manufacturer, productType, description)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Product not found in catalog")
		}

		sheet := store.Sheet(e)
		component := templates.ProductDetail(templates.ProductDetailData{
			Product:        product,
			DiscountedCost: services.DiscountedCost(product.UnitCost, product.Discount),
			Groups:         sheet.Groups(),
		})
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleItemAdd adds the resolved product to the session's cost sheet and
// re-renders the sheet section.
func HandleItemAdd(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("estimate: could not parse form: %v", err)
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		manufacturer := strings.TrimSpace(e.Request.FormValue("manufacturer"))
		productType := strings.TrimSpace(e.Request.FormValue("product_type"))
		description := strings.TrimSpace(e.Request.FormValue("description"))

		group := strings.TrimSpace(e.Request.FormValue("group"))
		if newGroup := strings.TrimSpace(e.Request.FormValue("new_group")); newGroup != "" {
			group = newGroup
		}
		if group == "" {
			return ErrorToast(e, http.StatusBadRequest, "Please select or type a group.")
		}

		quantity, err := strconv.Atoi(e.Request.FormValue("quantity"))
		if err != nil || quantity < 1 {
			quantity = 1
		}

		products, err := services.ListProducts(app)
		if err != nil {
			log.Printf("estimate: could not load catalog: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		product, ok := services.Resolve(products, manufacturer, productType, description)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Product not found in catalog")
		}

		sheet := store.Sheet(e)
		sheet.Add(product, quantity, group, product.Supplier, product.Discount)

		return renderSheet(e, sheet)
	}
}

// HandleItemQuantity updates one line item's quantity.
func HandleItemQuantity(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, err := strconv.Atoi(e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid line item id")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}
		quantity, err := strconv.Atoi(e.Request.FormValue("quantity"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Quantity must be a whole number")
		}

		sheet := store.Sheet(e)
		if err := sheet.SetQuantity(id, quantity); err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}
		return renderSheet(e, sheet)
	}
}

// HandleItemsDelete removes the checked line items.
func HandleItemsDelete(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		var ids []int
		for _, raw := range e.Request.Form["delete"] {
			if id, err := strconv.Atoi(raw); err == nil {
				ids = append(ids, id)
			}
		}

		sheet := store.Sheet(e)
		if len(ids) > 0 {
			sheet.Remove(ids)
			SuccessToast(e, "Deleted selected items")
		}
		return renderSheet(e, sheet)
	}
}

// HandleSheetClear empties the session's cost sheet.
func HandleSheetClear(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sheet := store.Sheet(e)
		sheet.Clear()
		return renderSheet(e, sheet)
	}
}

// HandleProjectName stores the project name used for export titles and
// filenames.
func HandleProjectName(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}
		sheet := store.Sheet(e)
		sheet.ProjectName = strings.TrimSpace(e.Request.FormValue("project_name"))
		SuccessToast(e, "Project name saved")
		return e.String(http.StatusOK, "")
	}
}

func sheetData(sheet *services.CostSheet) templates.SheetData {
	return templates.SheetData{
		Groups: sheet.Grouped(),
		Totals: sheet.Totals(),
	}
}

func renderSheet(e *core.RequestEvent, sheet *services.CostSheet) error {
	component := templates.CostSheetSection(sheetData(sheet))
	return component.Render(e.Request.Context(), e.Response)
}
