package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seasafety-api/internal/application/dto"
	"github.com/jhoicas/seasafety-api/internal/application/insight"
	"github.com/jhoicas/seasafety-api/internal/application/inventory"
)

// DashboardHandler maneja el panel principal.
type DashboardHandler struct {
	inventory *inventory.UseCase
	insight   *insight.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(inv *inventory.UseCase, ins *insight.UseCase) *DashboardHandler {
	return &DashboardHandler{inventory: inv, insight: ins}
}

// GetSummary devuelve los KPIs del panel.
// GET /api/dashboard
//
// Respuesta: DashboardDTO (total_units, item_types, critical_count, critical_items,
// outbound_count, recent_movements[5], insight).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	s := h.inventory.Summary()
	return c.JSON(dto.DashboardDTO{
		TotalUnits:      s.TotalUnits,
		ItemTypes:       s.ItemTypes,
		CriticalCount:   len(s.Critical),
		CriticalItems:   s.Critical,
		OutboundCount:   s.OutboundCount,
		RecentMovements: s.RecentMovements,
		Insight:         insightDTO(h.insight.State()),
	})
}
