package ports

import (
	"time"

	"github.com/rafabene/docgestor-backend/internal/domain/entities"
)

// TokenIssuer assina tokens para um usuário de sessão
type TokenIssuer interface {
	Issue(user entities.SessionUser) (token string, expiresAt time.Time, err error)
}
