package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seasafety-api/internal/application/dto"
	"github.com/jhoicas/seasafety-api/internal/application/inventory"
)

// InventoryHandler maneja items, movimientos y conciliación del libro de stock.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListItems godoc
// @Summary      Listar items de inventario
// @Tags         inventory
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre o categoría (sin distinguir mayúsculas)"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items := h.uc.Search(c.Query("search"))
	return c.JSON(dto.ItemListResponse{Items: items, Total: len(items)})
}

// CriticalItems godoc
// @Summary      Items en o por debajo del mínimo
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items/critical [get]
func (h *InventoryHandler) CriticalItems(c *fiber.Ctx) error {
	items := h.uc.Critical()
	return c.JSON(dto.ItemListResponse{Items: items, Total: len(items)})
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Description  Items críticos con la cantidad sugerida de pedido, ordenados por salidas de los últimos 90 días.
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.ReplenishmentSuggestionDTO
// @Router       /api/items/replenishment [get]
func (h *InventoryHandler) Replenishment(c *fiber.Ctx) error {
	return c.JSON(h.uc.Replenishment())
}

// CreateItem godoc
// @Summary      Registrar item
// @Description  Con quantity > 0 se registra además una entrada "Estoque Inicial".
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, category, quantity, unit, min_level"
// @Success      201   {object}  dto.CreateItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegisterItem(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ItemMovements godoc
// @Summary      Historial de un item
// @Description  Funciona aunque el item ya haya sido eliminado.
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del item"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/items/{id}/movements [get]
func (h *InventoryHandler) ItemMovements(c *fiber.Ctx) error {
	movements := h.uc.MovementsForItem(c.Params("id"))
	return c.JSON(dto.MovementListResponse{Movements: movements, Total: len(movements)})
}

// DeleteItem godoc
// @Summary      Eliminar item
// @Description  Borrado destructivo; el historial de movimientos se conserva.
// @Tags         inventory
// @Security     Bearer
// @Param        id   path  string  true  "ID del item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMovements godoc
// @Summary      Log de movimientos (más reciente primero)
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movements := h.uc.Movements()
	return c.JSON(dto.MovementListResponse{Movements: movements, Total: len(movements)})
}

// RegisterMovement godoc
// @Summary      Registrar entrada o salida
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "item_id, type (IN/OUT), quantity, destination (obligatorio en OUT)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.StockErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ApplyMovement(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Reconcile godoc
// @Summary      Conciliación del ledger
// @Description  Items cuyo saldo no se explica por sum(IN) - sum(OUT) de su historial.
// @Tags         ledger
// @Produce      json
// @Success      200  {object}  dto.ReconcileResponse
// @Router       /api/ledger/reconcile [get]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	disc := h.uc.Reconcile()
	return c.JSON(dto.ReconcileResponse{Balanced: len(disc) == 0, Discrepancies: disc})
}

// Reset godoc
// @Summary      Restaurar datos semilla
// @Tags         admin
// @Security     Bearer
// @Success      204
// @Router       /api/admin/reset [post]
func (h *InventoryHandler) Reset(c *fiber.Ctx) error {
	h.uc.Reset(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
