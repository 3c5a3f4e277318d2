package repository

import "context"

// KeyValueRepository define el puerto de almacenamiento clave-valor donde viven los
// snapshots serializados de items y movimientos.
type KeyValueRepository interface {
	// Get devuelve el valor o domain.ErrNotFound si la clave no existe.
	Get(ctx context.Context, key string) (string, error)
	// Put escribe todas las entradas; atómico si el backend lo permite.
	Put(ctx context.Context, entries map[string]string) error
	Ping(ctx context.Context) error
}
