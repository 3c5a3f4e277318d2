package http

import (
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seasafety-api/internal/application/insight"
	"github.com/jhoicas/seasafety-api/internal/application/inventory"
	"github.com/jhoicas/seasafety-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Inventory     *inventory.UseCase
	Insight       *insight.UseCase
	Report        *report.UseCase
	StorageDriver string
	// Metrics expone /metrics; nil no registra la ruta.
	Metrics fiber.Handler
	// JWTSecret vacío deja las rutas de escritura abiertas y los movimientos
	// quedan a nombre del usuario de sistema.
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.Inventory, deps.StorageDriver).Health)
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics)
	}

	inventoryHandler := NewInventoryHandler(deps.Inventory)
	dashboardHandler := NewDashboardHandler(deps.Inventory, deps.Insight)
	insightHandler := NewInsightHandler(deps.Insight, deps.Inventory)
	reportHandler := NewReportHandler(deps.Report)

	// Escritura: Bearer Token solo si hay secreto configurado.
	var writeMW, adminMW []fiber.Handler
	if deps.JWTSecret != "" {
		auth := AuthMiddleware(deps.JWTSecret)
		writeMW = []fiber.Handler{auth}
		adminMW = []fiber.Handler{auth, RequireRole(RoleAdmin)}
	}
	write := func(h fiber.Handler) []fiber.Handler { return withMiddleware(writeMW, h) }

	api := app.Group("/api")

	api.Get("/dashboard", dashboardHandler.GetSummary)

	items := api.Group("/items")
	items.Get("/", inventoryHandler.ListItems)
	items.Get("/critical", inventoryHandler.CriticalItems)
	items.Get("/replenishment", inventoryHandler.Replenishment)
	items.Post("/", write(inventoryHandler.CreateItem)...)
	items.Get("/:id/movements", inventoryHandler.ItemMovements)
	items.Delete("/:id", write(inventoryHandler.DeleteItem)...)

	movements := api.Group("/movements")
	movements.Get("/", inventoryHandler.ListMovements)
	movements.Post("/", write(inventoryHandler.RegisterMovement)...)

	api.Get("/ledger/reconcile", inventoryHandler.Reconcile)

	insights := api.Group("/insights")
	insights.Get("/", insightHandler.State)
	insights.Post("/", write(insightHandler.Request)...)

	reports := api.Group("/reports")
	reports.Get("/inventory.pdf", reportHandler.Inventory)
	reports.Get("/movements.pdf", reportHandler.Movements)

	api.Post("/admin/reset", withMiddleware(adminMW, inventoryHandler.Reset)...)
}

func withMiddleware(mw []fiber.Handler, h fiber.Handler) []fiber.Handler {
	return append(slices.Clone(mw), h)
}
