package security_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"motorent-backend/internal/security"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := security.NewTokenManager("unit-test-secret", 60)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "admin", "ADMIN")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "motorent-backend", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	manager := security.NewTokenManager("secret-a", 60)
	other := security.NewTokenManager("secret-b", 60)

	token, err := manager.GenerateAccessToken(uuid.New(), "admin", "ADMIN")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	manager := security.NewTokenManager("unit-test-secret", -1)

	token, err := manager.GenerateAccessToken(uuid.New(), "admin", "ADMIN")
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	manager := security.NewTokenManager("unit-test-secret", 60)
	_, err := manager.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := security.HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, security.CheckPassword(hash, "password123"))
	assert.False(t, security.CheckPassword(hash, "wrong"))
}
