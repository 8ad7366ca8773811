package dto

import (
	"github.com/rafabene/docgestor-backend/internal/domain/entities"
)

// LoginRequest representa a requisição do login simulado.
// Não há senha: o email decide o usuário retornado. O campo aceita qualquer
// valor JSON; o que não for string resulta no visitante.
type LoginRequest struct {
	Email any `json:"email" swaggertype:"string"`
}

// LoginUserResponse é o usuário associado ao token
type LoginUserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email any    `json:"email" swaggertype:"string"`
	Role  string `json:"role"`
}

// LoginResponse representa a resposta do login simulado
type LoginResponse struct {
	Token string            `json:"token"`
	User  LoginUserResponse `json:"user"`
}

// ToLoginResponse monta a resposta a partir do token e do usuário
func ToLoginResponse(token string, user entities.SessionUser) LoginResponse {
	return LoginResponse{
		Token: token,
		User: LoginUserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}
}
