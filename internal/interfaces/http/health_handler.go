package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seasafety-api/internal/application/dto"
)

// Pinger backend verificable (inventory.UseCase).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler GET /health con verificación del almacenamiento.
type HealthHandler struct {
	storage Pinger
	driver  string
}

// NewHealthHandler construye el handler.
func NewHealthHandler(storage Pinger, driver string) *HealthHandler {
	return &HealthHandler{storage: storage, driver: driver}
}

// Health responde 200 si el almacenamiento contesta; 503 si no.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{
			Status: "degraded", Storage: err.Error(), Driver: h.driver,
		})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Storage: "ok", Driver: h.driver})
}
