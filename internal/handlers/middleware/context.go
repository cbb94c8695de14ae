package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/academia-backend/internal/domain/ports"
)

// BaseURLContextKey guarda a URL base usada nos URIs de tipo RFC 7807
const BaseURLContextKey = "base_url"

// BaseURL disponibiliza a URL base da API para os handlers
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(BaseURLContextKey, baseURL)
		c.Next()
	}
}

// RequestLogger registra cada requisição no logger da aplicação
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if user, ok := CurrentUser(c); ok {
			args = append(args, "user_id", user.ID)
		}

		switch {
		case status >= 500:
			logger.Error("request failed", args...)
		case status >= 400:
			logger.Warn("request rejected", args...)
		default:
			logger.Info("request handled", args...)
		}
	}
}
