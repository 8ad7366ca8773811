package services

import (
	"context"

	"github.com/rafabene/docgestor-backend/internal/domain/ports"
)

// SchemaService garante a existência do schema de armazenamento
type SchemaService struct {
	migrator ports.SchemaMigrator
	logger   ports.Logger
}

// NewSchemaService cria um novo SchemaService
func NewSchemaService(migrator ports.SchemaMigrator, logger ports.Logger) *SchemaService {
	return &SchemaService{
		migrator: migrator,
		logger:   logger,
	}
}

// EnsureSchema cria o schema se necessário; pode ser chamado várias vezes
func (s *SchemaService) EnsureSchema(ctx context.Context) error {
	if err := s.migrator.EnsureSchema(ctx); err != nil {
		s.logger.Error("failed to ensure schema", "error", err)
		return err
	}
	s.logger.Debug("schema ensured")
	return nil
}
