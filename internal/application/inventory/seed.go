package inventory

import (
	"time"

	"github.com/jhoicas/seasafety-api/internal/domain/entity"
)

var seedDate = time.Date(2023, time.October, 20, 10, 0, 0, 0, time.UTC)

// SeedItems catálogo inicial de equipos de seguridad marítima.
// Se usa cuando no hay snapshot persistido o el guardado es inválido.
func SeedItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: "1", Name: "Coletes Salva-vidas Pro", Category: "Segurança", Quantity: 45, Unit: "un", MinLevel: 20, LastUpdated: seedDate},
		{ID: "2", Name: "Boia Circular Rígida", Category: "Salvamento", Quantity: 8, Unit: "un", MinLevel: 10, LastUpdated: seedDate},
		{ID: "3", Name: "Sinalizador de Fumaça", Category: "Sinalização", Quantity: 15, Unit: "un", MinLevel: 5, LastUpdated: seedDate},
		{ID: "4", Name: "Kit Primeiros Socorros Marítimo", Category: "Médico", Quantity: 3, Unit: "un", MinLevel: 5, LastUpdated: seedDate},
		{ID: "5", Name: "Balsa Autoinflável 12p", Category: "Salvamento", Quantity: 2, Unit: "un", MinLevel: 2, LastUpdated: seedDate},
	}
}

// SeedMovements log inicial (anterior al ledger; no explica todos los saldos).
func SeedMovements() []entity.Movement {
	return []entity.Movement{
		{
			ID:          "m1",
			ItemID:      "1",
			ItemName:    "Coletes Salva-vidas Pro",
			Type:        entity.MovementTypeIN,
			Quantity:    50,
			Destination: "Doca Principal",
			Date:        seedDate,
			User:        "Admin",
		},
	}
}
