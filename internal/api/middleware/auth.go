package middleware

import (
	"IdeaVerse/internal/pkg/identity"
	"IdeaVerse/internal/pkg/response"
	"context"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验身份提供方的会话 Token 并将调用方身份注入 Context。
// 校验失败一律拒绝请求，不回退到任何占位身份——否则所有权检查形同虚设。
func AuthMiddleware(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		caller, err := provider.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		userName := caller.Name
		if userName == "" {
			userName, err = provider.ResolveUserName(c.Request.Context(), caller.UserID)
			if err != nil {
				// 展示名只是冗余快照，解析失败不阻断请求
				log.WarnContext(c.Request.Context(), "resolve user name failed", "err", err)
			}
		}

		c.Set("user_id", caller.UserID)
		c.Set("user_name", userName)

		newCtx := context.WithValue(c.Request.Context(), "user_id", caller.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
