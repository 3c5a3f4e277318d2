// Package inventory es el store explícito del libro de stock: dueño único de la
// colección de items y del log de movimientos. Serializa las mutaciones, delega las
// reglas en el paquete ledger y persiste ambos snapshots después de cada cambio.
package inventory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/seasafety-api/internal/application/dto"
	"github.com/jhoicas/seasafety-api/internal/domain"
	"github.com/jhoicas/seasafety-api/internal/domain/entity"
	"github.com/jhoicas/seasafety-api/internal/domain/ledger"
	"github.com/jhoicas/seasafety-api/pkg/logger"
	"github.com/jhoicas/seasafety-api/pkg/metrics"
)

// DefaultSystemUser autor de los movimientos cuando no hay usuario autenticado.
const DefaultSystemUser = "Operador Logístico"

// RecentMovements cantidad de movimientos del resumen.
const RecentMovements = 5

// DefaultMinLevel mínimo de un item registrado sin min_level.
const DefaultMinLevel = 5

// Summary agregados del panel.
type Summary struct {
	TotalUnits      int
	ItemTypes       int
	Critical        []entity.InventoryItem
	OutboundCount   int
	RecentMovements []entity.Movement
}

// UseCase store del inventario.
type UseCase struct {
	mu        sync.Mutex
	items     []entity.InventoryItem
	movements []entity.Movement

	snapshots  *SnapshotStore
	clock      func() time.Time
	newID      func() string
	systemUser string
	log        *logger.Logger
	metrics    *metrics.Metrics
}

// Option configura el UseCase.
type Option func(*UseCase)

// WithClock reemplaza el reloj (tests).
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCase) { uc.clock = clock }
}

// WithIDGenerator reemplaza el generador de IDs (tests).
func WithIDGenerator(newID func() string) Option {
	return func(uc *UseCase) { uc.newID = newID }
}

// WithSystemUser fija el autor por defecto.
func WithSystemUser(name string) Option {
	return func(uc *UseCase) {
		if strings.TrimSpace(name) != "" {
			uc.systemUser = name
		}
	}
}

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) Option {
	return func(uc *UseCase) { uc.log = l }
}

// WithMetrics inyecta las métricas; nil las desactiva.
func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *UseCase) { uc.metrics = m }
}

// NewUseCase construye el store vacío; llamar a Load antes de servir.
func NewUseCase(snapshots *SnapshotStore, opts ...Option) *UseCase {
	uc := &UseCase{
		snapshots:  snapshots,
		clock:      func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
		systemUser: DefaultSystemUser,
		log:        logger.Nop(),
		items:      []entity.InventoryItem{},
		movements:  []entity.Movement{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Load hidrata el store desde los snapshots (o la semilla).
func (uc *UseCase) Load(ctx context.Context) {
	items, movements := uc.snapshots.Load(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.items, uc.movements = items, movements
	uc.metrics.SetCritical(len(ledger.CriticalItems(items)))
	uc.log.Info().Int("items", len(items)).Int("movements", len(movements)).Msg("inventario cargado")
}

// Items copia de la colección actual.
func (uc *UseCase) Items() []entity.InventoryItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return slices.Clone(uc.items)
}

// Movements copia del log, más reciente primero.
func (uc *UseCase) Movements() []entity.Movement {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return slices.Clone(uc.movements)
}

// Snapshot copia consistente de ambas colecciones.
func (uc *UseCase) Snapshot() ([]entity.InventoryItem, []entity.Movement) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return slices.Clone(uc.items), slices.Clone(uc.movements)
}

// Search filtra por nombre o categoría.
func (uc *UseCase) Search(term string) []entity.InventoryItem {
	return ledger.Search(uc.Items(), term)
}

// Critical items en o por debajo del mínimo.
func (uc *UseCase) Critical() []entity.InventoryItem {
	return ledger.CriticalItems(uc.Items())
}

// MovementsForItem historial de un item, exista o no.
func (uc *UseCase) MovementsForItem(itemID string) []entity.Movement {
	return ledger.MovementsForItem(uc.Movements(), itemID)
}

// Reconcile items cuyo historial no explica el saldo.
func (uc *UseCase) Reconcile() []ledger.Discrepancy {
	items, movements := uc.Snapshot()
	return ledger.Reconcile(items, movements)
}

// Summary agregados del panel, calculados desde la misma foto.
func (uc *UseCase) Summary() Summary {
	items, movements := uc.Snapshot()
	return Summary{
		TotalUnits:      ledger.TotalUnits(items),
		ItemTypes:       len(items),
		Critical:        ledger.CriticalItems(items),
		OutboundCount:   ledger.OutboundCount(movements),
		RecentMovements: ledger.Recent(movements, RecentMovements),
	}
}

// ApplyMovement valida la solicitud, aplica el movimiento y persiste.
// actor vacío usa el usuario de sistema.
func (uc *UseCase) ApplyMovement(ctx context.Context, actor string, req dto.RegisterMovementRequest) (dto.MovementResponse, error) {
	if t, err := entity.ParseMovementType(req.Type); err == nil {
		req.Type = string(t)
	}
	if err := validateStruct(req); err != nil {
		uc.metrics.Movement(req.Type, metrics.ResultRejected)
		return dto.MovementResponse{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	res, err := ledger.ApplyMovement(uc.items, ledger.MovementRequest{
		ItemID:      req.ItemID,
		Type:        entity.MovementType(req.Type),
		Quantity:    req.Quantity,
		Destination: req.Destination,
	}, uc.stamp(actor))
	if err != nil {
		uc.metrics.Movement(req.Type, metrics.ResultRejected)
		return dto.MovementResponse{}, err
	}

	uc.items = res.Items
	uc.movements = ledger.PrependMovement(uc.movements, res.Movement)
	uc.metrics.Movement(req.Type, metrics.ResultApplied)
	uc.persistLocked(ctx)

	uc.log.Info().
		Str("item_id", res.Item.ID).
		Str("type", string(res.Movement.Type)).
		Int("quantity", res.Movement.Quantity).
		Int("balance", res.Item.Quantity).
		Msg("movimiento registrado")
	return dto.MovementResponse{Item: res.Item, Movement: res.Movement}, nil
}

// RegisterItem da de alta un item; con cantidad inicial > 0 genera la entrada de stock inicial.
func (uc *UseCase) RegisterItem(ctx context.Context, actor string, req dto.CreateItemRequest) (dto.CreateItemResponse, error) {
	if err := validateStruct(req); err != nil {
		return dto.CreateItemResponse{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	reg, err := ledger.RegisterItem(uc.items, uc.movements, ledger.ItemDraft{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		MinLevel: minLevelOrDefault(req.MinLevel),
	}, uc.stamp(actor))
	if err != nil {
		return dto.CreateItemResponse{}, err
	}

	uc.items, uc.movements = reg.Items, reg.Movements
	if reg.Movement != nil {
		uc.metrics.Movement(string(entity.MovementTypeIN), metrics.ResultApplied)
	}
	uc.persistLocked(ctx)

	uc.log.Info().Str("item_id", reg.Item.ID).Str("name", reg.Item.Name).Int("quantity", reg.Item.Quantity).Msg("item registrado")
	return dto.CreateItemResponse{Item: reg.Item, Movement: reg.Movement}, nil
}

func minLevelOrDefault(v *int) int {
	if v == nil {
		return DefaultMinLevel
	}
	return *v
}

// DeleteItem elimina el item; el historial se conserva. domain.ErrItemNotFound si no existe.
func (uc *UseCase) DeleteItem(ctx context.Context, itemID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items, found := ledger.DeleteItem(uc.items, itemID)
	if !found {
		return domain.ErrItemNotFound
	}
	uc.items = items
	uc.persistLocked(ctx)

	uc.log.Info().Str("item_id", itemID).Msg("item eliminado")
	return nil
}

// Reset restaura la semilla y la persiste.
func (uc *UseCase) Reset(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.items, uc.movements = SeedItems(), SeedMovements()
	uc.persistLocked(ctx)
	uc.log.Warn().Msg("inventario restaurado a la semilla")
}

// Ping verifica el almacenamiento de snapshots.
func (uc *UseCase) Ping(ctx context.Context) error {
	return uc.snapshots.Ping(ctx)
}

func (uc *UseCase) stamp(actor string) ledger.Stamp {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = uc.systemUser
	}
	return ledger.Stamp{Now: uc.clock(), NewID: uc.newID, Actor: actor}
}

// persistLocked escribe ambos snapshots. Los errores se registran y no se propagan:
// el estado en memoria ya cambió. Requiere uc.mu tomado.
func (uc *UseCase) persistLocked(ctx context.Context) {
	uc.metrics.SetCritical(len(ledger.CriticalItems(uc.items)))
	if err := uc.snapshots.Save(context.WithoutCancel(ctx), uc.items, uc.movements); err != nil {
		uc.metrics.SnapshotWrite(metrics.ResultError)
		uc.log.Warn().Err(err).Msg("no se pudo persistir el inventario")
		return
	}
	uc.metrics.SnapshotWrite(metrics.ResultOK)
}
