package usecase

import (
	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/permission"
	"catalog-service/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (aggregate.Agent, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (aggregate.Agent, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return aggregate.Anonymous(), err
	}

	agent := claims.Agent()
	if agent.Kind() == aggregate.AgentUser {
		if _, err := permission.NewRole(agent.Role()); err != nil {
			return aggregate.Anonymous(), err
		}
	}
	return agent, nil
}
