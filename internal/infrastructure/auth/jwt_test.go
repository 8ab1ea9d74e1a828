package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourbook/backend/internal/infrastructure/config"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-for-unit-tests-only!!",
		AccessTokenExpiration: expiration,
		Issuer:                "tourbook-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, RoleVendor, claims.Role)
	assert.Equal(t, "tourbook-test", claims.Issuer)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken(uuid.New(), RoleCustomer)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(config.JWTConfig{
		Secret:                "a-completely-different-secret!!!!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "tourbook-test",
	})

	token, err := other.GenerateToken(uuid.New(), RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateToken_UnknownRole(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken(uuid.New(), Role("superuser"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrMissingRole)
}
