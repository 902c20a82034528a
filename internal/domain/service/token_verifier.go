package service

import "saletafood/internal/domain/entity"

// TokenClaims is the subset of access-token claims this service cares about.
// Tokens are issued by the external authentication provider; this service
// only verifies them.
type TokenClaims struct {
	UserID string
	Email  string
	Role   entity.Role
}

// TokenVerifier validates access tokens issued by the authentication
// provider and extracts their claims.
type TokenVerifier interface {
	// VerifyAccessToken checks the token signature and expiry and returns
	// the embedded claims.
	VerifyAccessToken(token string) (*TokenClaims, error)
}
