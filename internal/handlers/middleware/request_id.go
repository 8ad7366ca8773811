package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/docgestor-backend/internal/shared/contextutil"
)

const (
	// RequestIDHeader é o header usado para propagar o request id
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey é a chave do request id no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID reaproveita o X-Request-ID recebido ou gera um novo
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set(RequestIDContextKey, rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))

		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}
