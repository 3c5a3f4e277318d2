// Package redis implementa el almacenamiento clave-valor sobre Redis (go-redis v9).
package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/seasafety-api/internal/domain"
	"github.com/jhoicas/seasafety-api/internal/domain/repository"
)

var _ repository.KeyValueRepository = (*KVRepo)(nil)

const keyNamespace = "seasafety"

// cmdable subconjunto de comandos que usa el adaptador (permite un fake en tests).
type cmdable interface {
	Ping(ctx context.Context) *goredis.StatusCmd
	Get(ctx context.Context, key string) *goredis.StringCmd
	MSet(ctx context.Context, values ...any) *goredis.StatusCmd
}

// KVRepo implementación de KeyValueRepository con claves "seasafety:<key>".
type KVRepo struct {
	store cmdable
}

// NewClient parsea la URL (redis://host:port/db), crea el cliente y verifica conectividad.
func NewClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	if redisURL == "" {
		return nil, errors.New("redis: REDIS_URL es obligatorio")
	}
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsear redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewKVRepository construye el adaptador. Pasar *goredis.Client (o cualquier cmdable).
func NewKVRepository(store cmdable) *KVRepo {
	return &KVRepo{store: store}
}

func namespaced(key string) string {
	return keyNamespace + ":" + key
}

// Get obtiene una clave; redis.Nil se traduce a domain.ErrNotFound.
func (r *KVRepo) Get(ctx context.Context, key string) (string, error) {
	v, err := r.store.Get(ctx, namespaced(key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

// Put escribe todas las entradas con un único MSET (atómico en Redis).
func (r *KVRepo) Put(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(entries)*2)
	for _, k := range keys {
		args = append(args, namespaced(k), entries[k])
	}
	if err := r.store.MSet(ctx, args...).Err(); err != nil {
		return fmt.Errorf("redis mset: %w", err)
	}
	return nil
}

// Ping verifica la conexión.
func (r *KVRepo) Ping(ctx context.Context) error {
	return r.store.Ping(ctx).Err()
}
