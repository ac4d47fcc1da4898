package middleware

import (
	"IdeaVerse/internal/api/dto"
	"IdeaVerse/internal/pkg/identity"
	"IdeaVerse/internal/pkg/response"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type fakeProvider struct {
	caller    *identity.Identity
	verifyErr error
	name      string
	nameErr   error
}

func (f *fakeProvider) VerifyToken(context.Context, string) (*identity.Identity, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.caller, nil
}

func (f *fakeProvider) ResolveUserName(context.Context, string) (string, error) {
	return f.name, f.nameErr
}

func newAuthRouter(provider identity.Provider, optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	mw := AuthMiddleware(provider)
	if optional {
		mw = AuthOptionalMiddleware(provider)
	}

	r.GET("/probe", mw, func(c *gin.Context) {
		response.Success(c, gin.H{
			"user_id":   c.GetString("user_id"),
			"user_name": c.GetString("user_name"),
		})
	})
	return r
}

func doProbe(t *testing.T, r *gin.Engine, authHeader string) (int, dto.Response) {
	t.Helper()

	req := httptest.NewRequest("GET", "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var body dto.Response
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	return rr.Code, body
}

func TestAuthMiddleware(t *testing.T) {
	valid := &fakeProvider{caller: &identity.Identity{UserID: "user123", Name: "Tech Innovator"}}

	tests := []struct {
		name       string
		provider   identity.Provider
		authHeader string
		wantCode   int
	}{
		{
			name:     "missing header",
			provider: valid,
			wantCode: response.Unauthorized,
		},
		{
			name:       "not a bearer token",
			provider:   valid,
			authHeader: "Basic abc",
			wantCode:   response.Unauthorized,
		},
		{
			name:       "invalid token",
			provider:   &fakeProvider{verifyErr: errors.New("expired")},
			authHeader: "Bearer bad",
			wantCode:   response.Unauthorized,
		},
		{
			name:       "valid token",
			provider:   valid,
			authHeader: "Bearer good",
			wantCode:   response.Ok,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doProbe(t, newAuthRouter(tt.provider, false), tt.authHeader)
			if status != http.StatusOK {
				t.Fatalf("http status = %d, want 200", status)
			}
			if body.Code != tt.wantCode {
				t.Errorf("business code = %d, want %d", body.Code, tt.wantCode)
			}
		})
	}
}

func TestAuthMiddlewareInjectsIdentity(t *testing.T) {
	provider := &fakeProvider{caller: &identity.Identity{UserID: "user123", Name: "Tech Innovator"}}

	_, body := doProbe(t, newAuthRouter(provider, false), "Bearer good")

	data, _ := body.Data.(map[string]interface{})
	if data["user_id"] != "user123" {
		t.Errorf("user_id = %v, want user123", data["user_id"])
	}
	if data["user_name"] != "Tech Innovator" {
		t.Errorf("user_name = %v, want Tech Innovator", data["user_name"])
	}
}

// 展示名解析失败不阻断请求，身份校验失败才阻断
func TestAuthMiddlewareNameResolveFailure(t *testing.T) {
	provider := &fakeProvider{
		caller:  &identity.Identity{UserID: "user123"},
		nameErr: errors.New("identity api down"),
	}

	_, body := doProbe(t, newAuthRouter(provider, false), "Bearer good")
	if body.Code != response.Ok {
		t.Fatalf("business code = %d, want %d", body.Code, response.Ok)
	}

	data, _ := body.Data.(map[string]interface{})
	if data["user_id"] != "user123" {
		t.Errorf("user_id = %v, want user123", data["user_id"])
	}
}

func TestAuthOptionalMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		provider   identity.Provider
		authHeader string
		wantUserID string
	}{
		{
			name:     "missing header passes with empty identity",
			provider: &fakeProvider{caller: &identity.Identity{UserID: "user123"}},
		},
		{
			name:       "invalid token passes with empty identity",
			provider:   &fakeProvider{verifyErr: errors.New("expired")},
			authHeader: "Bearer bad",
		},
		{
			name:       "valid token injects identity",
			provider:   &fakeProvider{caller: &identity.Identity{UserID: "user123"}},
			authHeader: "Bearer good",
			wantUserID: "user123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, body := doProbe(t, newAuthRouter(tt.provider, true), tt.authHeader)
			if body.Code != response.Ok {
				t.Fatalf("business code = %d, want %d", body.Code, response.Ok)
			}

			data, _ := body.Data.(map[string]interface{})
			if data["user_id"] != tt.wantUserID {
				t.Errorf("user_id = %v, want %q", data["user_id"], tt.wantUserID)
			}
		})
	}
}
