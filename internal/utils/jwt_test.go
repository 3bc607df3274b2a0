package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depresscare-server/internal/config"
	"depresscare-server/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 60,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	user := &models.User{Role: models.RolePsychiatrist}
	user.ID = "user-123"

	token, err := GenerateToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.RolePsychiatrist, claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()
	user := &models.User{Role: models.RolePatient}
	user.ID = "user-123"

	token, err := GenerateToken(user, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpirationMinutes = -5

	user := &models.User{Role: models.RolePatient}
	user.ID = "user-123"

	token, err := GenerateToken(user, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWTSecret)
	assert.Error(t, err)
}
