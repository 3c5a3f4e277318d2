package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/seasafety-api/internal/domain/repository"
	"github.com/jhoicas/seasafety-api/internal/infrastructure/memory"
	"github.com/jhoicas/seasafety-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/seasafety-api/internal/infrastructure/redis"
	"github.com/jhoicas/seasafety-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/seasafety-api/pkg/config"
	"github.com/jhoicas/seasafety-api/pkg/logger"
)

// openStorage abre el backend de snapshots según STORAGE_DRIVER.
// El cierre devuelto libera conexiones; nunca es nil.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.KeyValueRepository, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.StorageSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("path", cfg.Storage.SQLitePath).Msg("almacenamiento sqlite listo")
		return sqlite.NewKVRepository(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("migraciones: %w", err)
		}
		log.Info().Msg("almacenamiento postgres listo")
		return postgres.NewKVRepository(pool), pool.Close, nil

	case config.StorageRedis:
		client, err := infraredis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Msg("almacenamiento redis listo")
		return infraredis.NewKVRepository(client), func() { _ = client.Close() }, nil
	}

	log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	return memory.NewKVRepository(), noop, nil
}
