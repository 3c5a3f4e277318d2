package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seasafety-api/internal/application/dto"
	"github.com/jhoicas/seasafety-api/internal/application/insight"
	"github.com/jhoicas/seasafety-api/internal/application/inventory"
)

// InsightHandler maneja el análisis de stock asistido por IA.
type InsightHandler struct {
	insight   *insight.UseCase
	inventory *inventory.UseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(ins *insight.UseCase, inv *inventory.UseCase) *InsightHandler {
	return &InsightHandler{insight: ins, inventory: inv}
}

// Request godoc
// @Summary      Generar análisis de stock con IA
// @Description  Una solicitud a la vez. Si el proveedor falla se devuelve el texto de respaldo con degraded=true.
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InsightStateDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/insights [post]
func (h *InsightHandler) Request(c *fiber.Ctx) error {
	st, err := h.insight.Request(c.Context(), h.inventory.Items())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(insightDTO(st))
}

// State godoc
// @Summary      Último análisis de IA
// @Tags         insights
// @Produce      json
// @Success      200  {object}  dto.InsightStateDTO
// @Router       /api/insights [get]
func (h *InsightHandler) State(c *fiber.Ctx) error {
	return c.JSON(insightDTO(h.insight.State()))
}

func insightDTO(st insight.State) dto.InsightStateDTO {
	out := dto.InsightStateDTO{Insight: st.Insight, Loading: st.Loading, Degraded: st.Degraded}
	if !st.UpdatedAt.IsZero() {
		t := st.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
