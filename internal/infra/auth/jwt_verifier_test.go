package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saletafood/config"
	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
)

const testSecret = "test-access-secret"

func newTestVerifier(t *testing.T) *jwtVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	verifier, err := NewJWTVerifier(cfg)
	require.NoError(t, err)

	return verifier.(*jwtVerifier)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.Config{})
	assert.Error(t, err)
}

func TestVerifyAccessToken_ValidToken(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "admin@saletafood.com",
		"role":  "ADMIN",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
	})

	claims, err := verifier.VerifyAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin@saletafood.com", claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestVerifyAccessToken_ExpiredToken(t *testing.T) {
	verifier := newTestVerifier(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "USER",
		"iat":  time.Now().Add(-time.Hour).Unix(),
		"exp":  time.Now().Add(-30 * time.Minute).Unix(),
	})

	_, err := verifier.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	verifier := newTestVerifier(t)

	tokenString := signToken(t, "a-different-secret", jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "USER",
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
	})

	_, err := verifier.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestVerifyAccessToken_MissingSubject(t *testing.T) {
	verifier := newTestVerifier(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"role": "USER",
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
	})

	_, err := verifier.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestVerifyAccessToken_UnknownRole(t *testing.T) {
	verifier := newTestVerifier(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "SUPERUSER",
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
	})

	_, err := verifier.VerifyAccessToken(tokenString)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	verifier := newTestVerifier(t)

	_, err := verifier.VerifyAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
