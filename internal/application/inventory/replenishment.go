package inventory

import (
	"sort"
	"time"

	"github.com/jhoicas/seasafety-api/internal/application/dto"
	"github.com/jhoicas/seasafety-api/internal/domain/entity"
	"github.com/jhoicas/seasafety-api/internal/domain/ledger"
)

const replenishmentWindow = 90 * 24 * time.Hour

// Replenishment lista de reposición de los items críticos, ordenada por urgencia.
func (uc *UseCase) Replenishment() []dto.ReplenishmentSuggestionDTO {
	items, movements := uc.Snapshot()
	return BuildReplenishment(items, movements, uc.clock())
}

// BuildReplenishment calcula las sugerencias para los items con saldo <= mínimo.
// Stock ideal = mínimo * 1.5 (redondeo hacia arriba). Orden: mayor volumen de salidas
// en los últimos 90 días, luego mayor déficit bajo el mínimo, luego nombre.
func BuildReplenishment(items []entity.InventoryItem, movements []entity.Movement, now time.Time) []dto.ReplenishmentSuggestionDTO {
	critical := ledger.CriticalItems(items)
	if len(critical) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}
	}

	since := now.Add(-replenishmentWindow)
	outByItem := make(map[string]int, len(critical))
	for _, m := range movements {
		if m.Type == entity.MovementTypeOUT && !m.Date.Before(since) {
			outByItem[m.ItemID] += m.Quantity
		}
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(critical))
	for _, it := range critical {
		ideal := (it.MinLevel*3 + 1) / 2
		suggested := ideal - it.Quantity
		if suggested < 0 {
			suggested = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ItemID:            it.ID,
			ItemName:          it.Name,
			Category:          it.Category,
			Unit:              it.Unit,
			CurrentStock:      it.Quantity,
			MinLevel:          it.MinLevel,
			IdealStock:        ideal,
			SuggestedOrderQty: suggested,
			UnitsOutLast90d:   outByItem[it.ID],
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.UnitsOutLast90d != b.UnitsOutLast90d {
			return a.UnitsOutLast90d > b.UnitsOutLast90d
		}
		defA, defB := a.MinLevel-a.CurrentStock, b.MinLevel-b.CurrentStock
		if defA != defB {
			return defA > defB
		}
		return a.ItemName < b.ItemName
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions
}
