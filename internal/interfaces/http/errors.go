package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seasafety-api/internal/application/dto"
	"github.com/jhoicas/seasafety-api/internal/domain"
)

// writeError traduce errores de dominio a respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(dto.StockErrorResponse{
			ErrorResponse: dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: stockErr.Error()},
			Requested:     stockErr.Requested,
			Available:     stockErr.Available,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsightInProgress):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSIGHT_IN_PROGRESS", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
