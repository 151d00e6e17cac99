package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/sinkhole_navigator/internal/config"
	"github.com/sirupsen/logrus"
)

// callerContextKey - ключ gin-контекста с именем аутентифицированного клиента
const callerContextKey = "caller_id"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу.
// Имя клиента, которому принадлежит ключ, сохраняется в контексте.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			}
		}

		if apiKey == "" {
			log.WithField("path", c.FullPath()).Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		caller, ok := cfg.APIKeys[apiKey]
		if !ok {
			log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Set(callerContextKey, caller)
		c.Next()
	}
}

// callerID возвращает имя клиента, установленное APIKeyAuthMiddleware
func callerID(c *gin.Context) string {
	return c.GetString(callerContextKey)
}
