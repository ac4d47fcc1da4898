package middleware

import (
	"IdeaVerse/internal/pkg/identity"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入身份，失败或缺失则身份为空
func AuthOptionalMiddleware(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Set("user_id", "")
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		caller, err := provider.VerifyToken(c.Request.Context(), token)

		if err != nil {
			c.Set("user_id", "")
		} else {
			c.Set("user_id", caller.UserID)
			newCtx := context.WithValue(c.Request.Context(), "user_id", caller.UserID)
			c.Request = c.Request.WithContext(newCtx)
		}

		c.Next()
	}
}
