package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brewery/backend/internal/infrastructure/auth"
	"github.com/brewery/backend/internal/interfaces/http/middleware"
)

const defaultTokenScope = "beer:read beer:write"

// AuthHandler issues and revokes access tokens
type AuthHandler struct {
	BaseHandler
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(jwtService *auth.JWTService, blacklist auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{jwtService: jwtService, blacklist: blacklist}
}

// RegisterRoutes wires the auth endpoints into the API group. The
// token endpoint itself must be on the JWT middleware's skip list.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/auth")
	group.POST("/token", h.Token)
	group.POST("/revoke", h.Revoke)
}

// TokenRequest identifies the client asking for a token
type TokenRequest struct {
	ClientID string `json:"clientId" binding:"required,notblank,max=255"`
	Scope    string `json:"scope" binding:"omitempty,max=255"`
}

// TokenResponse carries a freshly issued bearer token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// Token issues a signed access token
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	scope := req.Scope
	if scope == "" {
		scope = defaultTokenScope
	}

	token, _, err := h.jwtService.GenerateToken(req.ClientID, scope)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.jwtService.Expiration() / time.Second),
	})
}

// Revoke blacklists the caller's current token for its remaining
// lifetime
func (h *AuthHandler) Revoke(c *gin.Context) {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok || claims.ID == "" {
		h.status(c, http.StatusUnauthorized, "Missing token")
		return
	}

	ttl := h.jwtService.Expiration()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.blacklist.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
