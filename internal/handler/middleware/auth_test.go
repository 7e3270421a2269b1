//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/handler/middleware"
	"catalog-service/internal/pkg/cookie"
	"catalog-service/internal/pkg/jwt"
	"catalog-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service, *aggregate.Agent) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := jwt.NewService("test-secret", time.Hour)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	seen := &aggregate.Agent{}
	capture := func(c *gin.Context) {
		*seen = middleware.GetAgent(c)
		c.Status(http.StatusNoContent)
	}

	r := gin.New()
	r.GET("/optional", auth.OptionalAuth(), capture)
	r.GET("/required", auth.RequireAuth(), capture)
	r.GET("/system", auth.RequireAuth(), auth.RequireSystem(), capture)
	return r, jwtService, seen
}

func serve(r *gin.Engine, path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func TestOptionalAuth(t *testing.T) {
	r, jwtService, seen := newAuthRouter(t)

	t.Run("no token resolves to anonymous", func(t *testing.T) {
		rec := serve(r, "/optional", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, seen.IsAnonymous())
	})

	t.Run("valid token resolves to the user", func(t *testing.T) {
		user := aggregate.User(uuid.New(), "operator")
		token, err := jwtService.GenerateToken(user)
		require.NoError(t, err)

		rec := serve(r, "/optional", bearer(token))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, user, *seen)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		rec := serve(r, "/optional", bearer("not-a-token"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	r, jwtService, seen := newAuthRouter(t)

	t.Run("missing token", func(t *testing.T) {
		rec := serve(r, "/required", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("cookie takes precedence", func(t *testing.T) {
		token, err := jwtService.GenerateToken(aggregate.System())
		require.NoError(t, err)

		rec := serve(r, "/required", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: token})
			req.Header.Set("Authorization", "Bearer garbage")
		})
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, seen.IsSystem())
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(aggregate.System())
		require.NoError(t, err)

		rec := serve(r, "/required", bearer(token))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireSystem(t *testing.T) {
	r, jwtService, _ := newAuthRouter(t)

	admin, err := jwtService.GenerateToken(aggregate.User(uuid.New(), "admin"))
	require.NoError(t, err)
	system, err := jwtService.GenerateToken(aggregate.System())
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, serve(r, "/system", bearer(admin)).Code)
	assert.Equal(t, http.StatusNoContent, serve(r, "/system", bearer(system)).Code)
}
