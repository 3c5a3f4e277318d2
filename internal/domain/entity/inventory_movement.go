package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MovementType dirección de un movimiento de stock.
type MovementType string

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  MovementType = "IN"  // entrada
	MovementTypeOUT MovementType = "OUT" // salida
)

// Etiquetas heredadas de los snapshots del panel web (pt-BR).
const (
	legacyLabelIN  = "ENTRADA"
	legacyLabelOUT = "SAÍDA"
)

// ParseMovementType acepta IN/OUT (sin distinguir mayúsculas) y las etiquetas heredadas.
func ParseMovementType(s string) (MovementType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(MovementTypeIN), legacyLabelIN:
		return MovementTypeIN, nil
	case string(MovementTypeOUT), legacyLabelOUT, "SAIDA":
		return MovementTypeOUT, nil
	}
	return "", fmt.Errorf("tipo de movimiento desconocido: %q", s)
}

// Valid indica si t es IN u OUT.
func (t MovementType) Valid() bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// UnmarshalJSON normaliza el tipo al decodificar snapshots.
func (t *MovementType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseMovementType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Movement registro inmutable de una entrada o salida de stock.
// ItemID es una referencia débil: el item puede haber sido eliminado.
// ItemName es una copia del nombre al momento del movimiento.
type Movement struct {
	ID          string       `json:"id" validate:"required"`
	ItemID      string       `json:"itemId" validate:"required"`
	ItemName    string       `json:"itemName"`
	Type        MovementType `json:"type" validate:"oneof=IN OUT"`
	Quantity    int          `json:"quantity" validate:"min=1"`
	Destination string       `json:"destination"`
	Date        time.Time    `json:"date"`
	User        string       `json:"user"`
}
