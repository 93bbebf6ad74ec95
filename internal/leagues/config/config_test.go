package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:3000", cfg.ServerAddr())
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "league_backend", cfg.MongoDatabase)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("MONGODB_DATABASE", "leagues_test")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
	assert.Equal(t, "leagues_test", cfg.MongoDatabase)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
}
