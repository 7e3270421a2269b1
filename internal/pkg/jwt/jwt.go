package jwt

import (
	"errors"
	"time"

	"catalog-service/internal/domain/aggregate"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims identify the caller. Kind is "user" for people and "system" for service accounts
// such as the product service.
type Claims struct {
	SubjectID uuid.UUID `json:"sub_id"`
	Kind      string    `json:"kind"`
	Role      string    `json:"role"`
	jwt.RegisteredClaims
}

// Agent maps the claims onto the acting identity passed to commands.
func (c *Claims) Agent() aggregate.Agent {
	switch aggregate.AgentKind(c.Kind) {
	case aggregate.AgentSystem:
		return aggregate.System()
	case aggregate.AgentUser:
		return aggregate.User(c.SubjectID, c.Role)
	default:
		return aggregate.Anonymous()
	}
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

func (s *Service) GenerateToken(agent aggregate.Agent) (string, error) {
	now := time.Now()
	claims := Claims{
		SubjectID: agent.ID(),
		Kind:      string(agent.Kind()),
		Role:      agent.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
