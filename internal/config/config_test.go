package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("API_V1_STR", "api/v1/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, 90*time.Second, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "store_system", cfg.Name)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/store-system", cfg.APIPrefix)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "info", cfg.LogLevel())
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("DEBUG", "not-a-bool")

	_, err := Load()
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	cfg := &AppConfig{Log: LogConfig{Level: "warn"}}
	assert.Equal(t, "warn", cfg.LogLevel())

	cfg.Debug = true
	assert.Equal(t, "debug", cfg.LogLevel())
}

func TestNormalizePrefix(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"/":             "",
		"/store-system": "/store-system",
		"store-system/": "/store-system",
		"  /api/v1/  ":  "/api/v1",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizePrefix(in), "input %q", in)
	}
}
