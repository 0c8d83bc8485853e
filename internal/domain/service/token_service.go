// Package service declares the contracts for external collaborators the
// pipelines depend on.
package service

// TokenClaims are the claims extracted from a validated token.
type TokenClaims struct {
	Name string
	Role string
}

// TokenService defines the interface for issuing signed tokens. The core only
// requests issuance; validation exists for the delivery-layer middleware.
type TokenService interface {
	// GenerateToken issues an opaque signed token carrying the subject name
	// and role, valid for a fixed window.
	GenerateToken(name, role string) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)
}
