package http

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/application/usecase"
)

// Roles con permiso para modificar el catálogo.
var catalogEditors = []string{"admin", "almacen"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	AdjustStock    *inventory.AdjustStockUseCase
	StockState     *inventory.StockStateUseCase
	AlertScan      *inventory.AlertScanUseCase
	Replenishment  *inventory.ReplenishmentUseCase
	MetricsHandler http.Handler // nil = sin /metrics
	Clock          func() time.Time
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token con site_id)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	editors := RequireRole(catalogEditors...)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", editors, categoryHandler.Create)
	categories.Put("/:id", editors, categoryHandler.Update)
	categories.Delete("/:id", editors, categoryHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", editors, productHandler.Create)
	products.Put("/:id", editors, productHandler.Update)
	products.Delete("/:id", editors, productHandler.Delete)
	protected.Get("/suppliers", productHandler.Suppliers)

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.StockState, deps.AlertScan, deps.Replenishment, deps.Clock)
	invGroup.Post("/products/:id/adjustments", inventoryHandler.Adjust)
	invGroup.Get("/products/:id/adjustments", inventoryHandler.ListAdjustments)
	invGroup.Get("/products/:id/state", inventoryHandler.State)
	invGroup.Get("/alerts", inventoryHandler.Alerts)
	invGroup.Get("/replenishment-list", inventoryHandler.GetReplenishmentList)
}
