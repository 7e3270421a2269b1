package middleware

import (
	"net/http"
	"strings"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/pkg/cookie"
	"catalog-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxAgentKey = "agent"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth rejects requests without a valid token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		agent, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			abortInvalidToken(c, err)
			return
		}

		c.Set(ctxAgentKey, agent)
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through as the anonymous agent. A token that is
// present but invalid is still rejected.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Set(ctxAgentKey, aggregate.Anonymous())
			c.Next()
			return
		}

		agent, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			abortInvalidToken(c, err)
			return
		}

		c.Set(ctxAgentKey, agent)
		c.Next()
	}
}

// RequireSystem admits service accounts only. It must run after RequireAuth.
func (m *AuthMiddleware) RequireSystem() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetAgent(c).IsSystem() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortInvalidToken(c *gin.Context, err error) {
	GetLogger(c).Warn("Token validation failed in auth middleware", "error", err.Error())
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": "Invalid or expired token",
	})
	c.Abort()
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetAgent returns the acting identity, anonymous when no auth middleware ran.
func GetAgent(c *gin.Context) aggregate.Agent {
	v, exists := c.Get(ctxAgentKey)
	if !exists {
		return aggregate.Anonymous()
	}
	agent, ok := v.(aggregate.Agent)
	if !ok {
		return aggregate.Anonymous()
	}
	return agent
}
