package identity

import (
	"IdeaVerse/internal/api/config"
	"IdeaVerse/internal/pkg/consts"
	"IdeaVerse/internal/pkg/redis"
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

const userNameCacheExpiration = 24 * time.Hour

// Provider 外部身份提供方。所有校验失败都按失败处理，
// 绝不回退到任何占位身份。
type Provider interface {
	VerifyToken(ctx context.Context, tokenString string) (*Identity, error)
	ResolveUserName(ctx context.Context, userID string) (string, error)
}

type clerkProvider struct {
	publicKey *rsa.PublicKey
	issuer    string
	client    *resty.Client
}

// NewClerkProvider 根据配置构造 Clerk 风格的身份提供方客户端
func NewClerkProvider(cfg config.AuthConfig) (Provider, error) {
	if cfg.PublicKey == "" {
		return nil, errors.New("auth.public_key 未配置")
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("解析身份提供方公钥失败: %w", err)
	}

	var client *resty.Client
	if cfg.APIURL != "" {
		client = resty.New().
			SetBaseURL(strings.TrimSuffix(cfg.APIURL, "/")).
			SetAuthToken(cfg.APIKey).
			SetTimeout(3 * time.Second)
	}

	return &clerkProvider{
		publicKey: publicKey,
		issuer:    cfg.Issuer,
		client:    client,
	}, nil
}

// VerifyToken 校验会话 Token 并解析出调用方身份
func (s *clerkProvider) VerifyToken(ctx context.Context, tokenString string) (*Identity, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("非预期的签名方法: %v", token.Header["alg"])
		}
		return s.publicKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token 解析失败: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token 无效或已过期")
	}

	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, errors.New("token 签发方不匹配")
	}

	if claims.Subject == "" {
		return nil, errors.New("token 缺少 subject")
	}

	return &Identity{
		UserID: claims.Subject,
		Name:   claims.Name,
	}, nil
}

type clerkUser struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ResolveUserName 解析用户展示名，结果在 redis 中缓存。
// 展示名仅用于创建时的冗余快照，解析失败不阻断请求。
func (s *clerkProvider) ResolveUserName(ctx context.Context, userID string) (string, error) {
	key := consts.IdentityUserNameKey + userID
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		return cached, nil
	}

	if s.client == nil {
		return "", nil
	}

	var user clerkUser
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&user).
		SetPathParam("user_id", userID).
		Get("/v1/users/{user_id}")
	if err != nil {
		return "", fmt.Errorf("身份服务请求失败: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("身份服务返回异常状态: %d", resp.StatusCode())
	}

	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.Username
	}
	if name == "" {
		return "", nil
	}

	if err = redis.SetWithExpiration(ctx, key, name, userNameCacheExpiration); err != nil {
		log.WarnContext(ctx, "cache user name failed", "err", err)
	}
	return name, nil
}
