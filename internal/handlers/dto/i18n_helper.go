package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/docgestor-backend/internal/handlers/middleware"
	"github.com/rafabene/docgestor-backend/internal/infrastructure/i18n"
)

// DefaultLanguage é o idioma usado quando o contexto não traz nenhum
const DefaultLanguage = "pt-BR"

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "validation.required", map[string]interface{}{"Field": "cpf"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		// Fallback: retornar a chave se serviço não estiver disponível
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return DefaultLanguage
	}

	langStr, ok := lang.(string)
	if !ok {
		return DefaultLanguage
	}

	return langStr
}
