package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docgestor-backend/internal/handlers/dto"
)

const (
	homeMessage   = "API Doc-Gestor RH está funcionando!"
	initDBMessage = "Banco de dados inicializado!"
)

// SchemaService garante o schema do banco
type SchemaService interface {
	EnsureSchema(ctx context.Context) error
}

// SystemHandler atende as rotas de liveness e bootstrap do banco
type SystemHandler struct {
	schemaService SchemaService
}

// NewSystemHandler cria um novo SystemHandler
func NewSystemHandler(schemaService SchemaService) *SystemHandler {
	return &SystemHandler{
		schemaService: schemaService,
	}
}

// Home responde que a API está no ar
//
//	@Summary	Liveness
//	@Tags		system
//	@Produce	plain
//	@Success	200	{string}	string
//	@Router		/ [get]
func (h *SystemHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, homeMessage)
}

// InitDB cria o schema do banco se ainda não existir (uso em desenvolvimento)
//
//	@Summary	Inicializa o banco
//	@Tags		system
//	@Produce	plain
//	@Success	200	{string}	string
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/init_db [get]
func (h *SystemHandler) InitDB(c *gin.Context) {
	if err := h.schemaService.EnsureSchema(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.StorageErrorResponse(c, err))
		return
	}
	c.String(http.StatusOK, initDBMessage)
}
