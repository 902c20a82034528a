// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"saletafood/config"
	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/service"
)

// jwtVerifier is a concrete implementation of the TokenVerifier interface
// using the JWT standard. Tokens are minted by the external authentication
// provider with a shared HMAC secret; this service only verifies them.
type jwtVerifier struct {
	secret string // Shared secret key the provider signs access tokens with.
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{secret: cfg.SecretKey.Access}, nil
}

// VerifyAccessToken checks the token signature and expiry and returns the
// embedded claims.
func (s *jwtVerifier) VerifyAccessToken(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}

	subject, ok := mapClaims["sub"].(string)
	if !ok || subject == "" {
		return nil, domainerrors.ErrTokenInvalid
	}

	claims := &service.TokenClaims{UserID: subject}

	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}

	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}
	claims.Role = entity.Role(role)
	if !claims.Role.IsValid() {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claims, nil
}
