package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/docgestor-backend/internal/domain/ports"
)

// RequestLogger registra cada requisição concluída
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"request_id", c.GetString(RequestIDContextKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request failed", args...)
		case c.Writer.Status() >= 400:
			logger.Warn("request rejected", args...)
		default:
			logger.Info("request completed", args...)
		}
	}
}
