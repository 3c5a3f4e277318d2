// Package sqlite implementa el almacenamiento clave-valor sobre un archivo SQLite (GORM).
// Pensado para una instalación de un solo nodo, equivalente al localStorage del panel web.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/seasafety-api/internal/domain"
	"github.com/jhoicas/seasafety-api/internal/domain/repository"
)

var _ repository.KeyValueRepository = (*KVRepo)(nil)

// kvEntry fila de la tabla kv_entries.
type kvEntry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:191"`
	Value     string `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

// Open abre (o crea) la base en path y migra la tabla kv_entries.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrar kv_entries: %w", err)
	}
	return db, nil
}

// KVRepo implementación de KeyValueRepository sobre GORM.
type KVRepo struct {
	db *gorm.DB
}

// NewKVRepository construye el adaptador sobre una conexión ya migrada (ver Open).
func NewKVRepository(db *gorm.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get obtiene el valor de una clave.
func (r *KVRepo) Get(ctx context.Context, key string) (string, error) {
	var e kvEntry
	err := r.db.WithContext(ctx).Where("entry_key = ?", key).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get kv %s: %w", key, err)
	}
	return e.Value, nil
}

// Put hace upsert de todas las entradas en una transacción.
func (r *KVRepo) Put(ctx context.Context, entries map[string]string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for k, v := range entries {
			e := kvEntry{Key: k, Value: v, UpdatedAt: now}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "entry_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&e).Error
			if err != nil {
				return fmt.Errorf("upsert kv %s: %w", k, err)
			}
		}
		return nil
	})
}

// Ping verifica la conexión subyacente.
func (r *KVRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
