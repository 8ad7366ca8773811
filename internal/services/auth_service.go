package services

import (
	"context"
	"time"

	"github.com/rafabene/docgestor-backend/internal/domain/entities"
	"github.com/rafabene/docgestor-backend/internal/domain/ports"
)

// Usuários fixos do login simulado
var (
	simulatedUsers = map[string]entities.SessionUser{
		"admin@docgestor.com": {ID: 1, Name: "Admin", Role: entities.RoleAdmin},
		"user@docgestor.com":  {ID: 2, Name: "Usuário Comum", Role: entities.RoleUser},
	}
	guestUser = entities.SessionUser{ID: 999, Name: "Visitante", Role: entities.RoleUser}
)

// AuthService emite tokens para o login SIMULADO.
//
// ATENÇÃO: não há autenticação real. Nenhuma senha é verificada e o papel é
// decidido apenas pelo email declarado pelo cliente. Os tokens emitidos não
// são exigidos por nenhuma rota e não devem ser tratados como controle de
// acesso.
type AuthService struct {
	tokens ports.TokenIssuer
	logger ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(tokens ports.TokenIssuer, logger ports.Logger) *AuthService {
	return &AuthService{
		tokens: tokens,
		logger: logger,
	}
}

// LoginInput representa os dados do login simulado.
// Email é o valor JSON recebido, de qualquer tipo.
type LoginInput struct {
	Email any
}

// LoginResult contém o token emitido e o usuário associado
type LoginResult struct {
	Token string
	User  entities.SessionUser
}

// ResolveSimulatedUser mapeia o email para um dos usuários fixos.
// Só strings podem casar; qualquer outro valor, inclusive ausente, resulta
// no visitante.
func ResolveSimulatedUser(email any) entities.SessionUser {
	user := guestUser
	if s, ok := email.(string); ok {
		if known, ok := simulatedUsers[s]; ok {
			user = known
		}
	}
	user.Email = email
	return user
}

// Login emite um token para o usuário simulado correspondente ao email
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user := ResolveSimulatedUser(input.Email)

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("failed to sign token", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.logger.Info("simulated login",
		"user_id", user.ID,
		"role", string(user.Role),
		"expires_at", expiresAt.UTC().Format(time.RFC3339),
	)

	return &LoginResult{
		Token: token,
		User:  user,
	}, nil
}
