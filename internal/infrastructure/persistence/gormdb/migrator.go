package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/docgestor-backend/internal/domain/ports"
)

// Migrator implementa ports.SchemaMigrator via AutoMigrate
type Migrator struct {
	db *gorm.DB
}

// NewMigrator cria um novo Migrator
func NewMigrator(db *gorm.DB) ports.SchemaMigrator {
	return &Migrator{db: db}
}

// EnsureSchema cria tabelas e índices ausentes; é idempotente
func (m *Migrator) EnsureSchema(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&EmployeeModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
