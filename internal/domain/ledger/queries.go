package ledger

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/seasafety-api/internal/domain/entity"
)

// CriticalItems items con quantity <= minLevel, en el orden original.
func CriticalItems(items []entity.InventoryItem) []entity.InventoryItem {
	out := make([]entity.InventoryItem, 0)
	for _, it := range items {
		if it.IsCritical() {
			out = append(out, it)
		}
	}
	return out
}

// TotalUnits suma de todas las cantidades.
func TotalUnits(items []entity.InventoryItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// OutboundCount número de movimientos de salida.
func OutboundCount(movements []entity.Movement) int {
	n := 0
	for _, m := range movements {
		if m.Type == entity.MovementTypeOUT {
			n++
		}
	}
	return n
}

// Search filtra por subcadena en nombre o categoría, sin distinguir mayúsculas
// (case folding Unicode: "BOIA" encuentra "Boia", "SAÍDA" encuentra "saída").
// Un término vacío devuelve todos los items.
func Search(items []entity.InventoryItem, term string) []entity.InventoryItem {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if needle == "" ||
			strings.Contains(fold.String(it.Name), needle) ||
			strings.Contains(fold.String(it.Category), needle) {
			out = append(out, it)
		}
	}
	return out
}

// MovementsForItem historial de un item (más reciente primero), aunque el item ya no exista.
func MovementsForItem(movements []entity.Movement, itemID string) []entity.Movement {
	out := make([]entity.Movement, 0)
	for _, m := range movements {
		if m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out
}

// Recent primeros n movimientos del log.
func Recent(movements []entity.Movement, n int) []entity.Movement {
	if n < 0 {
		n = 0
	}
	if n > len(movements) {
		n = len(movements)
	}
	out := make([]entity.Movement, n)
	copy(out, movements[:n])
	return out
}

// Discrepancy item cuyo historial no explica su saldo actual.
type Discrepancy struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Recorded int    `json:"recorded"` // entradas - salidas registradas
}

// Reconcile compara, por item presente, sum(IN) - sum(OUT) contra la cantidad actual.
// Los datos semilla anteriores al ledger aparecen aquí; no es un error.
func Reconcile(items []entity.InventoryItem, movements []entity.Movement) []Discrepancy {
	recorded := make(map[string]int, len(items))
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeIN:
			recorded[m.ItemID] += m.Quantity
		case entity.MovementTypeOUT:
			recorded[m.ItemID] -= m.Quantity
		}
	}
	out := make([]Discrepancy, 0)
	for _, it := range items {
		if r := recorded[it.ID]; r != it.Quantity {
			out = append(out, Discrepancy{ItemID: it.ID, ItemName: it.Name, Quantity: it.Quantity, Recorded: r})
		}
	}
	return out
}
