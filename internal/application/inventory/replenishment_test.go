package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/seasafety-api/internal/application/inventory"
	"github.com/jhoicas/seasafety-api/internal/domain/entity"
)

func TestBuildReplenishment_OrdenPorUrgencia(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	movements := []entity.Movement{
		{ID: "a", ItemID: "5", Type: entity.MovementTypeOUT, Quantity: 2, Date: now.AddDate(0, 0, -10)},
		{ID: "b", ItemID: "2", Type: entity.MovementTypeOUT, Quantity: 30, Date: now.AddDate(0, 0, -120)},
		{ID: "c", ItemID: "4", Type: entity.MovementTypeIN, Quantity: 9, Date: now.AddDate(0, 0, -1)},
	}

	got := inventory.BuildReplenishment(inventory.SeedItems(), movements, now)

	require.Len(t, got, 3)
	assert.Equal(t, "5", got[0].ItemID, "mayor volumen de salidas reciente")
	assert.Equal(t, 2, got[0].UnitsOutLast90d)
	assert.Equal(t, 3, got[0].IdealStock)
	assert.Equal(t, 1, got[0].SuggestedOrderQty)

	assert.Equal(t, "2", got[1].ItemID, "salida antigua fuera de la ventana")
	assert.Equal(t, 0, got[1].UnitsOutLast90d)
	assert.Equal(t, 15, got[1].IdealStock)
	assert.Equal(t, 7, got[1].SuggestedOrderQty)

	assert.Equal(t, "4", got[2].ItemID)
	assert.Equal(t, 8, got[2].IdealStock)
	assert.Equal(t, 5, got[2].SuggestedOrderQty)

	for i, s := range got {
		assert.Equal(t, i+1, s.Priority)
	}
}

func TestBuildReplenishment_SinCriticos(t *testing.T) {
	items := []entity.InventoryItem{{ID: "1", Name: "Coletes", Quantity: 50, MinLevel: 20}}
	got := inventory.BuildReplenishment(items, nil, time.Now())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
