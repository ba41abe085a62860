package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewery/backend/internal/infrastructure/auth"
	"github.com/brewery/backend/internal/interfaces/http/middleware"
)

func newAuthTestRouter() (*gin.Engine, *auth.JWTService, *auth.MemoryTokenBlacklist) {
	jwtService := auth.NewJWTService("test-secret-key-at-least-32-chars", "brewery-test", 15*time.Minute)
	blacklist := auth.NewMemoryTokenBlacklist()

	cfg := middleware.DefaultJWTConfig(jwtService)
	cfg.TokenBlacklist = blacklist

	engine := gin.New()
	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddlewareWithConfig(cfg))
	NewAuthHandler(jwtService, blacklist).RegisterRoutes(api)
	return engine, jwtService, blacklist
}

func TestAuthHandler_Token(t *testing.T) {
	engine, jwtService, _ := newAuthTestRouter()

	w := performJSON(engine, http.MethodPost, "/api/v1/auth/token", gin.H{
		"clientId": "beer-client",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Bearer", body.TokenType)
	assert.Equal(t, int64(15*60), body.ExpiresIn)

	claims, err := jwtService.ValidateToken(body.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "beer-client", claims.Subject)
	assert.Equal(t, defaultTokenScope, claims.Scope)
}

func TestAuthHandler_Token_MissingClientID(t *testing.T) {
	engine, _, _ := newAuthTestRouter()

	w := performJSON(engine, http.MethodPost, "/api/v1/auth/token", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"must not be null"}, body["clientId"])
}

func TestAuthHandler_Revoke(t *testing.T) {
	engine, jwtService, blacklist := newAuthTestRouter()

	token, claims, err := jwtService.GenerateToken("beer-client", "beer:read")
	require.NoError(t, err)

	req := performJSONWithToken(engine, http.MethodPost, "/api/v1/auth/revoke", nil, token)
	require.Equal(t, http.StatusNoContent, req.Code)

	revoked, err := blacklist.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	// The revoked token no longer passes the middleware
	again := performJSONWithToken(engine, http.MethodPost, "/api/v1/auth/revoke", nil, token)
	assert.Equal(t, http.StatusUnauthorized, again.Code)
}

func TestAuthHandler_Revoke_RequiresToken(t *testing.T) {
	engine, _, _ := newAuthTestRouter()

	w := performJSON(engine, http.MethodPost, "/api/v1/auth/revoke", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
