package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seasafety-api/internal/application/report"
)

// ReportHandler descarga de reportes PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory godoc
// @Summary      Reporte PDF de inventario
// @Tags         reports
// @Produce      application/pdf
// @Param        title  query  string  false  "Título del documento (por defecto Inventário SEASAFETY)"
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	doc, err := h.uc.InventoryReport(c.Context(), c.Query("title"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, doc)
}

// Movements godoc
// @Summary      Reporte PDF de movimientos
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/movements.pdf [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	doc, err := h.uc.MovementReport(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, doc)
}

func sendPDF(c *fiber.Ctx, doc report.Document) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(doc.Content)
}
