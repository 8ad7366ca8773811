package http

import (
	"context"
	errs "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docgestor-backend/internal/handlers/dto"
	"github.com/rafabene/docgestor-backend/internal/services"
)

// AuthService é o que o handler precisa do serviço de login simulado
type AuthService interface {
	Login(ctx context.Context, input services.LoginInput) (*services.LoginResult, error)
}

// AuthHandler expõe o login SIMULADO. Não autentica ninguém: o token é
// emitido para qualquer email, sem senha, e nenhuma rota o exige.
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login emite um token para o usuário fixo correspondente ao email
//
//	@Summary		Login simulado (não autentica)
//	@Description	Emite um token sem verificar credenciais. admin@docgestor.com e user@docgestor.com recebem usuários fixos; qualquer outro email recebe o visitante.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	false	"Email"
//	@Success		200			{object}	dto.LoginResponse
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		500			{object}	dto.ErrorResponse
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	// Corpo vazio equivale a email ausente
	if err := c.ShouldBindJSON(&req); err != nil && !errs.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.InvalidJSONResponse(c))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{Email: req.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponse(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(result.Token, result.User))
}
