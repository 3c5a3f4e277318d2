// Package ledger contiene las reglas del libro de stock: el saldo nunca queda negativo
// y cada cambio de cantidad produce exactamente un movimiento.
//
// Todas las funciones son puras: reciben las colecciones actuales y devuelven copias
// nuevas; los slices de entrada nunca se modifican.
package ledger

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/seasafety-api/internal/domain"
	"github.com/jhoicas/seasafety-api/internal/domain/entity"
)

// Destinos fijos de los movimientos generados por el ledger.
const (
	InternalStorageDestination = "Depósito Interno"
	InitialStockDestination    = "Estoque Inicial"
	DefaultUnit                = "un"
)

// Stamp agrupa lo que el ledger necesita del exterior para crear registros:
// reloj, generador de IDs y autor del movimiento.
type Stamp struct {
	Now   time.Time
	NewID func() string
	Actor string
}

// MovementRequest solicitud de entrada o salida sobre un item existente.
type MovementRequest struct {
	ItemID      string
	Type        entity.MovementType
	Quantity    int
	Destination string // obligatorio en OUT; ignorado en IN
}

// Result colección de items actualizada más el movimiento nuevo.
type Result struct {
	Items    []entity.InventoryItem
	Item     entity.InventoryItem
	Movement entity.Movement
}

// ApplyMovement valida y aplica un movimiento.
// IN suma hasta math.MaxInt (más allá es domain.ErrInvalidInput); OUT con saldo
// menor al solicitado devuelve *domain.InsufficientStockError sin tocar nada.
func ApplyMovement(items []entity.InventoryItem, req MovementRequest, st Stamp) (Result, error) {
	if !req.Type.Valid() || req.Quantity <= 0 {
		return Result{}, domain.ErrInvalidInput
	}
	destination := InternalStorageDestination
	if req.Type == entity.MovementTypeOUT {
		destination = strings.TrimSpace(req.Destination)
		if destination == "" {
			return Result{}, domain.ErrInvalidInput
		}
	}

	idx := indexOf(items, req.ItemID)
	if idx < 0 {
		return Result{}, domain.ErrItemNotFound
	}
	item := items[idx]

	if req.Type == entity.MovementTypeIN && req.Quantity > math.MaxInt-item.Quantity {
		return Result{}, fmt.Errorf("%w: la entrada desborda el saldo del item %s", domain.ErrInvalidInput, item.ID)
	}
	newQty := item.Quantity + req.Quantity
	if req.Type == entity.MovementTypeOUT {
		if item.Quantity < req.Quantity {
			return Result{}, &domain.InsufficientStockError{
				ItemID:    item.ID,
				Requested: req.Quantity,
				Available: item.Quantity,
			}
		}
		newQty = item.Quantity - req.Quantity
	}

	item.Quantity = newQty
	item.LastUpdated = st.Now
	updated := slices.Clone(items)
	updated[idx] = item

	return Result{
		Items: updated,
		Item:  item,
		Movement: entity.Movement{
			ID:          st.NewID(),
			ItemID:      item.ID,
			ItemName:    item.Name,
			Type:        req.Type,
			Quantity:    req.Quantity,
			Destination: destination,
			Date:        st.Now,
			User:        st.Actor,
		},
	}, nil
}

// PrependMovement devuelve un log nuevo con m al frente (más reciente primero).
func PrependMovement(movements []entity.Movement, m entity.Movement) []entity.Movement {
	out := make([]entity.Movement, 0, len(movements)+1)
	out = append(out, m)
	return append(out, movements...)
}

// ItemDraft datos de un item nuevo.
type ItemDraft struct {
	Name     string
	Category string
	Quantity int
	Unit     string
	MinLevel int
}

// Registration resultado de RegisterItem.
type Registration struct {
	Items     []entity.InventoryItem
	Movements []entity.Movement
	Item      entity.InventoryItem
	// Movement es el movimiento de stock inicial; nil si la cantidad inicial era 0.
	Movement *entity.Movement
}

// RegisterItem da de alta un item al final de la colección. Si la cantidad inicial es
// mayor que cero sintetiza una entrada con destino InitialStockDestination, así el log
// explica cada unidad en stock.
func RegisterItem(items []entity.InventoryItem, movements []entity.Movement, draft ItemDraft, st Stamp) (Registration, error) {
	name := strings.TrimSpace(draft.Name)
	category := strings.TrimSpace(draft.Category)
	if name == "" || category == "" || draft.Quantity < 0 || draft.MinLevel < 0 {
		return Registration{}, domain.ErrInvalidInput
	}
	unit := strings.TrimSpace(draft.Unit)
	if unit == "" {
		unit = DefaultUnit
	}

	item := entity.InventoryItem{
		ID:          st.NewID(),
		Name:        name,
		Category:    category,
		Quantity:    draft.Quantity,
		Unit:        unit,
		MinLevel:    draft.MinLevel,
		LastUpdated: st.Now,
	}
	reg := Registration{
		Items:     append(slices.Clone(items), item),
		Movements: slices.Clone(movements),
		Item:      item,
	}
	if item.Quantity > 0 {
		mov := entity.Movement{
			ID:          st.NewID(),
			ItemID:      item.ID,
			ItemName:    item.Name,
			Type:        entity.MovementTypeIN,
			Quantity:    item.Quantity,
			Destination: InitialStockDestination,
			Date:        st.Now,
			User:        st.Actor,
		}
		reg.Movements = PrependMovement(movements, mov)
		reg.Movement = &mov
	}
	return reg, nil
}

// DeleteItem elimina el item sin condiciones. El historial de movimientos no se toca:
// los movimientos quedan apuntando a un item inexistente.
func DeleteItem(items []entity.InventoryItem, itemID string) ([]entity.InventoryItem, bool) {
	idx := indexOf(items, itemID)
	if idx < 0 {
		return slices.Clone(items), false
	}
	return slices.Delete(slices.Clone(items), idx, idx+1), true
}

// Find busca un item por ID.
func Find(items []entity.InventoryItem, itemID string) (entity.InventoryItem, bool) {
	idx := indexOf(items, itemID)
	if idx < 0 {
		return entity.InventoryItem{}, false
	}
	return items[idx], true
}

func indexOf(items []entity.InventoryItem, itemID string) int {
	return slices.IndexFunc(items, func(i entity.InventoryItem) bool { return i.ID == itemID })
}
