package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"costestimation/collections"
	"costestimation/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	sessions := handlers.NewSessionStore()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Estimate page and product selectors ─────────────────
		se.Router.GET("/", handlers.HandleEstimatePage(app, sessions))
		se.Router.GET("/select/product-types", handlers.HandleProductTypeOptions(app))
		se.Router.GET("/select/descriptions", handlers.HandleDescriptionOptions(app))
		se.Router.GET("/select/product", handlers.HandleProductDetail(app, sessions))

		// ── Cost sheet mutations ─────────────────────────────────
		se.Router.POST("/sheet/items", handlers.HandleItemAdd(app, sessions))
		se.Router.POST("/sheet/items/{id}/quantity", handlers.HandleItemQuantity(sessions))
		se.Router.POST("/sheet/items/delete", handlers.HandleItemsDelete(sessions))
		se.Router.POST("/sheet/clear", handlers.HandleSheetClear(sessions))
		se.Router.POST("/sheet/project", handlers.HandleProjectName(sessions))

		// ── Export and restore ───────────────────────────────────
		se.Router.GET("/sheet/export/csv", handlers.HandleExportCSV(sessions))
		se.Router.GET("/sheet/export/xlsx", handlers.HandleExportExcel(sessions))
		se.Router.GET("/sheet/export/pdf", handlers.HandleExportPDF(sessions))
		se.Router.POST("/sheet/restore", handlers.HandleRestore(sessions))

		// ── Catalog management ───────────────────────────────────
		se.Router.GET("/catalog", handlers.HandleCatalogPage(app))
		se.Router.POST("/catalog/products", handlers.HandleProductSave(app))
		se.Router.POST("/catalog/products/{code}/delete", handlers.HandleProductDelete(app))
		se.Router.POST("/catalog/import", handlers.HandleCatalogImport(app))
		se.Router.GET("/catalog/template.csv", handlers.HandleTemplateCSV())
		se.Router.GET("/catalog/template.xlsx", handlers.HandleTemplateExcel())

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
