package identity

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 身份提供方会话 Token 中我们关心的内容
type SessionClaims struct {
	// Name 展示名，部分模板会直接签进 Token
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Identity 一次校验通过后的调用方身份
type Identity struct {
	UserID string
	Name   string
}
