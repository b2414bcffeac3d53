package auth_test

import (
	"testing"
	"time"

	"janseva/pkg/auth"

	"github.com/stretchr/testify/require"
)

func TestJWTManagerRoundTrip(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken("admin-1", "priya", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin-1", claims.UserID)
	require.Equal(t, "priya", claims.Username)
	require.Equal(t, "admin", claims.Role)
}

func TestJWTManagerRejectsWrongSecret(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := auth.NewJWTManager("other-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken("admin-1", "priya", "admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTManagerRejectsExpiredToken(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateToken("admin-1", "priya", "admin")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTManagerRejectsGarbage(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	_, err := manager.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestGenerateRefreshToken(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateRefreshToken("admin-1")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin-1", claims.UserID)
	require.Empty(t, claims.Username)
}
