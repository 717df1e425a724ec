package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTConfig = JWTConfig{
	SecretKey: "test-secret-key",
	Issuer:    "leavn-api",
}

func TestNewJWTValidatorRejectsEmptySecret(t *testing.T) {
	_, err := NewJWTValidator(JWTConfig{Issuer: "leavn-api"})
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	validator, err := NewJWTValidator(testJWTConfig)
	require.NoError(t, err)

	token, err := GenerateToken(testJWTConfig, "user-123", "user@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateTokenExpired(t *testing.T) {
	validator, err := NewJWTValidator(testJWTConfig)
	require.NoError(t, err)

	token, err := GenerateToken(testJWTConfig, "user-123", "", -time.Minute)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	validator, err := NewJWTValidator(testJWTConfig)
	require.NoError(t, err)

	forged, err := GenerateToken(JWTConfig{SecretKey: "other-secret", Issuer: "leavn-api"}, "user-123", "", time.Hour)
	require.NoError(t, err)

	_, err = validator.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	validator, err := NewJWTValidator(testJWTConfig)
	require.NoError(t, err)

	token, err := GenerateToken(JWTConfig{SecretKey: testJWTConfig.SecretKey, Issuer: "someone-else"}, "user-123", "", time.Hour)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	validator, err := NewJWTValidator(testJWTConfig)
	require.NoError(t, err)

	_, err = validator.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
