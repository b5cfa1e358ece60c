package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkale/jobshield/internal/config"
)

func newTestJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService("test-secret")
	clientID := uuid.New()

	token, err := service.GenerateToken(clientID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.ClientID)
	assert.Equal(t, clientID, claims.GetClientID())
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newTestJWTService("secret-one").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = newTestJWTService("secret-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenMalformed(t *testing.T) {
	service := newTestJWTService("test-secret")

	tests := []string{"", "not-a-token", "a.b.c"}
	for _, token := range tests {
		_, err := service.ValidateToken(token)
		assert.Error(t, err, "ValidateToken(%q) should fail", token)
	}
}

func TestTokenValidatorAdapter(t *testing.T) {
	service := newTestJWTService("test-secret")
	clientID := uuid.New()

	token, err := service.GenerateToken(clientID)
	require.NoError(t, err)

	validator := service.AsTokenValidator()
	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.GetClientID())
}
