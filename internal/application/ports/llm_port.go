package ports

import (
	"context"

	"github.com/jhoicas/seasafety-api/internal/domain/entity"
)

// LLMService define el puerto de salida hacia el servicio de texto generativo.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
type LLMService interface {
	// SummarizeStock recibe la foto actual del inventario y devuelve un análisis
	// narrativo breve (pt-BR). El contexto debe llevar un timeout.
	SummarizeStock(ctx context.Context, items []entity.InventoryItem) (string, error)
}
