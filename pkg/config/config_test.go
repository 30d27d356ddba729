package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Resolver.FetchTimeoutSeconds)
	assert.Equal(t, int64(5*1024*1024), cfg.Resolver.MaxBodyBytes)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 60, cfg.RateLimit.WindowSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Empty(t, cfg.Server.AllowedOrigins)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FETCH_TIMEOUT", "5")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Resolver.FetchTimeoutSeconds)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
}

func TestLoadFromEnv_UnparseableIntFallsBack(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Resolver.FetchTimeoutSeconds)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, _ := LoadFromEnv()
		return cfg
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Resolver.FetchTimeoutSeconds = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Resolver.MaxBodyBytes = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.RateLimit.Requests = -1
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.RateLimit.Requests = 5
	cfg.RateLimit.WindowSeconds = 0
	assert.Error(t, cfg.Validate())

	// Rate limiting disabled: window is irrelevant
	cfg = valid()
	cfg.RateLimit.Requests = 0
	cfg.RateLimit.WindowSeconds = 0
	assert.NoError(t, cfg.Validate())
}
