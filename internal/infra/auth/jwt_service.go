// Package auth provides the concrete implementation of the token issuer.
package auth

import (
	"time"

	"salesapi/config"
	"salesapi/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService issues HS256-signed tokens carrying name and role claims.
type jwtService struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.JWT.Secret,
		ttl:    cfg.JWT.TTL,
		now:    time.Now,
	}, nil
}

// GenerateToken issues a signed token with the subject name and role, valid
// for the configured window from issuance.
func (s *jwtService) GenerateToken(name, role string) (string, error) {
	issuedAt := s.now()
	claims := jwt.MapClaims{
		"name": name,
		"role": role,
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry of a token string and
// extracts its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims")
	}

	claims := &service.TokenClaims{}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}

	return claims, nil
}
