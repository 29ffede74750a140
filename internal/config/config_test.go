package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"civic/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
environment: production
http:
  addr: ":9090"
  allowedOrigins: ["https://example.org"]
identity:
  maxBatchSize: 50
rateLimit:
  backend: redis
  window: 30s
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://example.org"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 50, cfg.Identity.MaxBatchSize)
	require.Equal(t, "redis", cfg.RateLimit.Backend)
	require.Equal(t, 30*time.Second, cfg.RateLimit.Window)

	// defaults
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, 5, cfg.Identity.MaxAttempts)
	require.Equal(t, 60, cfg.RateLimit.Requests)
	require.False(t, cfg.RateLimit.Disabled)
	require.Empty(t, cfg.RateLimit.TrustedProxies)
	require.Equal(t, 20, cfg.Worker.MaxWorkers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "environment: development\n")
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("IDENTITY_MAX_BATCH_SIZE", "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
	require.Equal(t, 7, cfg.Identity.MaxBatchSize)
}

func TestLoad_Redis(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "redis:\n  url: \"\"\n"))
	require.NoError(t, err)
	require.Empty(t, cfg.Redis.URL)
	require.Equal(t, 10, cfg.Redis.PoolSize)

	cfg, err = config.Load(writeConfig(t, "redis:\n  url: redis://cache:6379/1\n"))
	require.NoError(t, err)
	require.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
}

func TestLoad_RateLimitOverrides(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
rateLimit:
  disabled: true
  trustedProxies: ["10.0.0.0/8", "192.168.1.1"]
`))
	require.NoError(t, err)
	require.True(t, cfg.RateLimit.Disabled)
	require.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.RateLimit.TrustedProxies)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("IDENTITY_MAX_BATCH_SIZE", "9")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Identity.MaxBatchSize)
	require.Equal(t, 5432, cfg.Database.Port)
}
