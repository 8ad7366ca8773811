package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/docgestor-backend/internal/domain/errors"
)

// Mensagens fixas do campo "error", esperadas pelo frontend
const (
	ErrorIncompleteData = "Dados incompletos"
	ErrorAlreadyExists  = "Email ou CPF já cadastrado"
	ErrorInvalidJSON    = "JSON inválido"
	ErrorInternal       = "Erro interno do servidor"
)

// ErrorResponse carrega a mensagem fixa em "error" e os membros do
// RFC 7807 (Problem Details for HTTP APIs) com título e detalhe traduzidos.
type ErrorResponse struct {
	Error string `json:"error"`
	*problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(c *gin.Context, problemType, titleKey string, status int, errorText, detail string) ErrorResponse {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:5001"
	}

	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{
		Error:          errorText,
		DefaultProblem: problem,
	}
}

// Helper functions para respostas de erro comuns

// IncompleteDataResponse cria a resposta 400 para campos ausentes ou inválidos
func IncompleteDataResponse(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponse(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		400,
		ErrorIncompleteData,
		T(c, domainerrors.ErrIncompleteData.Error()),
	)
	response.Errors = validationErrors
	return response
}

// InvalidJSONResponse cria a resposta 400 para corpo que não é JSON
func InvalidJSONResponse(c *gin.Context) ErrorResponse {
	return NewErrorResponse(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.validation.title",
		400,
		ErrorInvalidJSON,
		T(c, "error.invalid_json"),
	)
}

// ConflictResponse cria a resposta 409 para email ou CPF duplicado
func ConflictResponse(c *gin.Context) ErrorResponse {
	return NewErrorResponse(
		c,
		domainerrors.ProblemTypeConflict,
		"error.conflict.title",
		409,
		ErrorAlreadyExists,
		T(c, domainerrors.ErrEmployeeAlreadyExists.Error()),
	)
}

// StorageErrorResponse cria a resposta 500 com a descrição da falha
func StorageErrorResponse(c *gin.Context, err error) ErrorResponse {
	return NewErrorResponse(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		500,
		err.Error(),
		T(c, domainerrors.ErrStorage.Error()),
	)
}

// InternalErrorResponse cria a resposta 500 para falhas fora do banco.
// A causa fica só no log.
func InternalErrorResponse(c *gin.Context) ErrorResponse {
	return NewErrorResponse(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		500,
		ErrorInternal,
		T(c, "error.internal"),
	)
}
