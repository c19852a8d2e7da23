package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey    = "user_id"
	UserIDHeader = "X-User-ID"
)

// ExtractUserContext lê o usuário do header X-User-ID, injetado pelo gateway
func ExtractUserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := strings.TrimSpace(c.GetHeader(UserIDHeader)); userID != "" {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// GetUserID retorna o ID do usuário ou vazio quando a requisição é anônima
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr
		}
	}
	return ""
}
