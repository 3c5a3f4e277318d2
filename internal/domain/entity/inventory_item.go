package entity

import "time"

// InventoryItem representa un tipo de equipo de seguridad marítima con su saldo disponible.
// Quantity solo cambia vía movimientos; MinLevel es el punto de reposición.
// Las etiquetas validate se aplican al cargar snapshots.
type InventoryItem struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity" validate:"min=0"`
	Unit        string    `json:"unit"`
	MinLevel    int       `json:"minLevel" validate:"min=0"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// IsCritical indica si el saldo está en o por debajo del mínimo configurado.
func (i InventoryItem) IsCritical() bool {
	return i.Quantity <= i.MinLevel
}
