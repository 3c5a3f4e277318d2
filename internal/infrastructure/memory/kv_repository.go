// Package memory implementa el almacenamiento clave-valor en memoria del proceso.
// Es el backend por defecto en desarrollo y el fake de los tests.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/seasafety-api/internal/domain"
	"github.com/jhoicas/seasafety-api/internal/domain/repository"
)

var _ repository.KeyValueRepository = (*KVRepo)(nil)

// KVRepo mapa protegido por RWMutex.
type KVRepo struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewKVRepository construye el repositorio vacío.
func NewKVRepository() *KVRepo {
	return &KVRepo{entries: make(map[string]string)}
}

// Get devuelve el valor o domain.ErrNotFound.
func (r *KVRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// Put escribe todas las entradas bajo el mismo lock.
func (r *KVRepo) Put(_ context.Context, entries map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range entries {
		r.entries[k] = v
	}
	return nil
}

// Ping siempre responde.
func (r *KVRepo) Ping(context.Context) error { return nil }
