package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
)

// InventoryHandler maneja ajustes de stock, estado derivado, alertas y reposición (protegido).
type InventoryHandler struct {
	adjust        *inventory.AdjustStockUseCase
	state         *inventory.StockStateUseCase
	alerts        *inventory.AlertScanUseCase
	replenishment *inventory.ReplenishmentUseCase
	clock         func() time.Time
}

// NewInventoryHandler construye el handler. clock nil usa time.Now.
func NewInventoryHandler(
	adjust *inventory.AdjustStockUseCase,
	state *inventory.StockStateUseCase,
	alerts *inventory.AlertScanUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	clock func() time.Time,
) *InventoryHandler {
	if clock == nil {
		clock = time.Now
	}
	return &InventoryHandler{adjust: adjust, state: state, alerts: alerts, replenishment: replenishment, clock: clock}
}

// Adjust godoc
// @Summary      Ajustar stock
// @Description  increase suma (y registra la reposición), decrease resta con piso en cero, correction fija la cantidad.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "direction, amount, unit_cost (solo increase), reason"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	siteID := GetSiteID(c)
	if siteID == "" {
		return unauthorized(c)
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.adjust.AdjustFromRequest(c.Context(), siteID, GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListAdjustments godoc
// @Summary      Bitácora de ajustes del producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {array}   dto.AdjustmentResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/adjustments [get]
func (h *InventoryHandler) ListAdjustments(c *fiber.Ctx) error {
	siteID := GetSiteID(c)
	if siteID == "" {
		return unauthorized(c)
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.adjust.ListAdjustments(c.Context(), siteID, c.Params("id"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// State godoc
// @Summary      Estado de stock del producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockStateResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/state [get]
func (h *InventoryHandler) State(c *fiber.Ctx) error {
	siteID := GetSiteID(c)
	if siteID == "" {
		return unauthorized(c)
	}
	out, err := h.state.Get(c.Context(), siteID, c.Params("id"), h.clock())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Escanear alertas del sitio
// @Description  Vencidos, agotados, bajo mínimo y próximos a vencer; orden por severidad y nombre.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertScanResponse
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	siteID := GetSiteID(c)
	if siteID == "" {
		return unauthorized(c)
	}
	out, err := h.alerts.Scan(c.Context(), siteID, h.clock())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos en estado bajo o peor con la cantidad sugerida para volver al máximo.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        auto_reorder  query  bool  false  "Solo productos con reorden automático"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/inventory/replenishment-list [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	siteID := GetSiteID(c)
	if siteID == "" {
		return unauthorized(c)
	}
	list, err := h.replenishment.GenerateReplenishmentList(c.Context(), siteID, h.clock(), c.QueryBool("auto_reorder", false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}
