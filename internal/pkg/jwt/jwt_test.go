//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTripKeepsAgent(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	userID := uuid.New()

	tests := []struct {
		name  string
		agent aggregate.Agent
	}{
		{name: "user", agent: aggregate.User(userID, "operator")},
		{name: "system", agent: aggregate.System()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.GenerateToken(tt.agent)
			require.NoError(t, err)

			claims, err := svc.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.agent, claims.Agent())
		})
	}
}

func TestValidateTokenRejects(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(aggregate.System())
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Minute).GenerateToken(aggregate.System())
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
