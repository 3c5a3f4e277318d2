package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/seasafety-api/internal/domain"
	"github.com/jhoicas/seasafety-api/internal/domain/repository"
)

var _ repository.KeyValueRepository = (*KVRepo)(nil)

// KVRepo implementación de KeyValueRepository sobre la tabla kv_entries.
type KVRepo struct {
	pool *pgxpool.Pool
}

// NewKVRepository construye el adaptador con el pool.
func NewKVRepository(pool *pgxpool.Pool) *KVRepo {
	return &KVRepo{pool: pool}
}

// Get obtiene el valor de una clave.
func (r *KVRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := getValue(ctx, r.pool, key, &value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get kv %s: %w", key, err)
	}
	return value, nil
}

// Put inicia una transacción, hace upsert de cada entrada y Commit (Rollback si algo falla).
func (r *KVRepo) Put(ctx context.Context, entries map[string]string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for k, v := range entries {
		if err := upsertValue(ctx, tx, k, v); err != nil {
			return fmt.Errorf("upsert kv %s: %w", k, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ping verifica la conexión.
func (r *KVRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func getValue(ctx context.Context, q Querier, key string, dst *string) error {
	return q.QueryRow(ctx, `SELECT value FROM kv_entries WHERE entry_key = $1`, key).Scan(dst)
}

func upsertValue(ctx context.Context, q Querier, key, value string) error {
	query := `
		INSERT INTO kv_entries (entry_key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (entry_key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	_, err := q.Exec(ctx, query, key, value)
	return err
}
