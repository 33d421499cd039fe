package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logfmt", cfg.Log.Format)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10.0, cfg.RateLimit.RPS)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, time.Duration(0), cfg.Translate.Delay)
	assert.Empty(t, cfg.Rates.File)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("COMPANION_HTTP_ADDR", ":9090")
	t.Setenv("COMPANION_LOG_FORMAT", "json")
	t.Setenv("COMPANION_SESSION_STORE", "redis")
	t.Setenv("COMPANION_RATE_LIMIT_BURST", "5")
	t.Setenv("COMPANION_TRANSLATE_DELAY", "300ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, 300*time.Millisecond, cfg.Translate.Delay)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("COMPANION_LOG_LEVEL=debug\nCOMPANION_RATES_FILE=/tmp/rates.json\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("COMPANION_LOG_LEVEL")
		os.Unsetenv("COMPANION_RATES_FILE")
	})

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/rates.json", cfg.Rates.File)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"log format", "COMPANION_LOG_FORMAT", "xml"},
		{"log level", "COMPANION_LOG_LEVEL", "loud"},
		{"session store", "COMPANION_SESSION_STORE", "disk"},
		{"duration", "COMPANION_SESSION_TTL", "forever"},
		{"negative rate", "COMPANION_RATE_LIMIT_RPS", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
