package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/seasafety-api/internal/domain"
	"github.com/jhoicas/seasafety-api/internal/domain/entity"
	"github.com/jhoicas/seasafety-api/internal/domain/repository"
	"github.com/jhoicas/seasafety-api/pkg/logger"
)

// Claves de los snapshots en el almacenamiento clave-valor.
const (
	InventoryKey = "seasafety_inv"
	MovementsKey = "seasafety_mov"
)

// SnapshotStore serializa las dos colecciones como JSON bajo claves fijas.
type SnapshotStore struct {
	repo   repository.KeyValueRepository
	prefix string
	log    *logger.Logger
}

// NewSnapshotStore construye el store. prefix se antepone a ambas claves.
func NewSnapshotStore(repo repository.KeyValueRepository, prefix string, log *logger.Logger) *SnapshotStore {
	if log == nil {
		log = logger.Nop()
	}
	return &SnapshotStore{repo: repo, prefix: prefix, log: log}
}

// Keys devuelve las claves efectivas (con prefijo).
func (s *SnapshotStore) Keys() (inventoryKey, movementsKey string) {
	return s.prefix + InventoryKey, s.prefix + MovementsKey
}

// Load lee ambos snapshots. Cada colección ausente, ilegible o con algún registro fuera
// del modelo (id vacío o repetido, cantidades negativas, tipo desconocido) se reemplaza
// por la semilla de forma independiente; nunca falla.
func (s *SnapshotStore) Load(ctx context.Context) ([]entity.InventoryItem, []entity.Movement) {
	invKey, movKey := s.Keys()

	items, err := loadCollection[entity.InventoryItem](ctx, s.repo, invKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", invKey).Msg("snapshot de inventario no disponible, usando semilla")
		items = SeedItems()
	}
	movements, err := loadCollection[entity.Movement](ctx, s.repo, movKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", movKey).Msg("snapshot de movimientos no disponible, usando semilla")
		movements = SeedMovements()
	}
	return items, movements
}

// Save reescribe ambos snapshots completos en una sola escritura.
func (s *SnapshotStore) Save(ctx context.Context, items []entity.InventoryItem, movements []entity.Movement) error {
	invKey, movKey := s.Keys()
	inv, err := json.Marshal(nonNil(items))
	if err != nil {
		return fmt.Errorf("serializar inventario: %w", err)
	}
	mov, err := json.Marshal(nonNil(movements))
	if err != nil {
		return fmt.Errorf("serializar movimientos: %w", err)
	}
	if err := s.repo.Put(ctx, map[string]string{invKey: string(inv), movKey: string(mov)}); err != nil {
		return fmt.Errorf("guardar snapshots: %w", err)
	}
	return nil
}

// Ping verifica el backend de almacenamiento.
func (s *SnapshotStore) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

var errNullSnapshot = errors.New("snapshot nulo")

func loadCollection[T any](ctx context.Context, repo repository.KeyValueRepository, key string) ([]T, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if out == nil {
		return nil, errNullSnapshot
	}
	// IDs únicos y cada registro dentro del modelo (elementos null quedan sin id).
	if err := validate.Var(out, "unique=ID,dive"); err != nil {
		return nil, fmt.Errorf("%w: registros inválidos en %s: %v", domain.ErrInvalidInput, key, err)
	}
	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
