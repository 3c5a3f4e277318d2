package dto

import "github.com/jhoicas/seasafety-api/internal/domain/entity"

// RegisterMovementRequest body para POST /api/movements.
// Type acepta IN/OUT y las etiquetas ENTRADA/SAÍDA; se normaliza antes de validar.
type RegisterMovementRequest struct {
	ItemID      string `json:"item_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity    int    `json:"quantity" validate:"min=1"`
	Destination string `json:"destination" validate:"required_if=Type OUT"`
}

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
	Unit     string `json:"unit"` // "un" si viene vacío
	MinLevel *int   `json:"min_level" validate:"omitempty,min=0"` // 5 si se omite
}

// MovementResponse resultado de un movimiento aplicado.
type MovementResponse struct {
	Item     entity.InventoryItem `json:"item"`
	Movement entity.Movement      `json:"movement"`
}

// CreateItemResponse item creado y, si tenía stock inicial, el movimiento sintetizado.
type CreateItemResponse struct {
	Item     entity.InventoryItem `json:"item"`
	Movement *entity.Movement     `json:"movement,omitempty"`
}

// ItemListResponse listado de items.
type ItemListResponse struct {
	Items []entity.InventoryItem `json:"items"`
	Total int                    `json:"total"`
}

// MovementListResponse listado de movimientos (más reciente primero).
type MovementListResponse struct {
	Movements []entity.Movement `json:"movements"`
	Total     int               `json:"total"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un item crítico.
type ReplenishmentSuggestionDTO struct {
	ItemID            string `json:"item_id"`
	ItemName          string `json:"item_name"`
	Category          string `json:"category"`
	Unit              string `json:"unit"`
	CurrentStock      int    `json:"current_stock"`
	MinLevel          int    `json:"min_level"`
	IdealStock        int    `json:"ideal_stock"`         // ceil(MinLevel * 1.5)
	SuggestedOrderQty int    `json:"suggested_order_qty"` // IdealStock - CurrentStock
	UnitsOutLast90d   int    `json:"units_out_last_90d"`  // volumen de salidas reciente
	Priority          int    `json:"priority"`            // 1 = más urgente
}
