package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quantitytakeoff/collections"
	"quantitytakeoff/handlers"
)

func main() {
	app := pocketbase.New()
	engines := handlers.NewEngineSet()

	// Create collections, seed the chapter catalog and normalize legacy
	// data on startup.
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateLegacyUnits(app); err != nil {
			log.Printf("Warning: unit migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Model ingestion ──────────────────────────────────────
		se.Router.POST("/projects/{id}/model", handlers.HandleModelUpload(app, engines))
		se.Router.GET("/projects/{id}/model", handlers.HandleModelStatus(app, engines))

		// ── Chapter catalog ──────────────────────────────────────
		se.Router.GET("/chapters", handlers.HandleChapterList(app))

		// ── Element types ────────────────────────────────────────
		se.Router.GET("/projects/{id}/element-types", handlers.HandleElementTypeList(app, engines))
		se.Router.POST("/projects/{id}/element-types", handlers.HandleElementTypeCreate(app, engines))
		se.Router.POST("/projects/{id}/element-types/reorder", handlers.HandleElementTypeReorder(app))
		se.Router.PATCH("/projects/{id}/element-types/{typeId}", handlers.HandleElementTypeEdit(app, engines))
		se.Router.DELETE("/projects/{id}/element-types/{typeId}", handlers.HandleElementTypeDelete(app))
		se.Router.POST("/projects/{id}/element-types/{typeId}/accept", handlers.HandleElementTypeAccept(app, engines))

		// ── Measurements ─────────────────────────────────────────
		se.Router.GET("/projects/{id}/element-types/{typeId}/measurements", handlers.HandleMeasurementList(app, engines))

		// ── Budget exports ───────────────────────────────────────
		se.Router.GET("/projects/{id}/budget/export/pdf", handlers.HandleBudgetExportPDF(app, engines))
		se.Router.GET("/projects/{id}/budget/export/excel", handlers.HandleBudgetExportExcel(app, engines))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
