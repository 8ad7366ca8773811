package ports

import "context"

// SchemaMigrator garante que o schema do armazenamento exista
type SchemaMigrator interface {
	EnsureSchema(ctx context.Context) error
}
