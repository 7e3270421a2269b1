//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/permission"
	"catalog-service/internal/pkg/config"
	"catalog-service/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, agent aggregate.Agent) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(agent)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) UserToken(t *testing.T, role permission.Role) string {
	t.Helper()
	return h.GenerateToken(t, aggregate.User(uuid.New(), role.String()))
}

func (h *JWTHelper) SystemToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, aggregate.System())
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, agent aggregate.Agent) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(agent)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
