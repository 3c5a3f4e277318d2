package dto

import "github.com/jhoicas/seasafety-api/internal/domain/entity"

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	TotalUnits      int                    `json:"total_units"`    // suma de saldos
	ItemTypes       int                    `json:"item_types"`     // número de items distintos
	CriticalCount   int                    `json:"critical_count"` // items con saldo <= mínimo
	CriticalItems   []entity.InventoryItem `json:"critical_items"`
	OutboundCount   int                    `json:"outbound_count"`
	RecentMovements []entity.Movement      `json:"recent_movements"` // los 5 más recientes
	Insight         InsightStateDTO        `json:"insight"`
}
