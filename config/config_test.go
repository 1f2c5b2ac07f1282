package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Env)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "foodhub.db", cfg.DatabaseDSN)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsRelease())
}

func TestLoadMissingFileIsFine(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"env: release\nport: 8080\nsession_ttl: 1h\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	// Unset keys keep their defaults
	assert.Equal(t, "foodhub.db", cfg.DatabaseDSN)
	assert.True(t, cfg.IsRelease())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\n"), 0o644))

	t.Setenv("FOODHUB_PORT", "9090")
	t.Setenv("FOODHUB_DATABASE_DSN", ":memory:")
	t.Setenv("FOODHUB_SESSION_TTL", "30m")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, ":memory:", cfg.DatabaseDSN)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}
