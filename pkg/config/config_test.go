package config_test

import (
	"testing"
	"time"

	"janseva/pkg/config"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Blank values fall through to defaults.
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("MATCH_STRATEGY", "")
	t.Setenv("MATCH_TOP_K", "")
	t.Setenv("REDIS_REPLY_TTL_SECONDS", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "janseva", cfg.Database.DBName)
	require.Empty(t, cfg.Redis.Addr)
	require.Equal(t, 5*time.Minute, cfg.Redis.ReplyTTL)
	require.Equal(t, "fulltext", cfg.Match.Strategy)
	require.Equal(t, 5, cfg.Match.TopK)
	require.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MATCH_STRATEGY", "fuzzy")
	t.Setenv("MATCH_TOP_K", "10")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_REPLY_TTL_SECONDS", "60")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "fuzzy", cfg.Match.Strategy)
	require.Equal(t, 10, cfg.Match.TopK)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, time.Minute, cfg.Redis.ReplyTTL)
	require.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
}
