package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, float64(10), cfg.API.RateLimitRPS)
	assert.Equal(t, 20, cfg.API.RateLimitBurst)
	assert.Equal(t, ":8090", cfg.Dashboard.Addr)
	assert.NotEmpty(t, cfg.Device.Path)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
api:
  base_url: https://jobs.example.com
  timeout: 5s
dashboard:
  addr: ":9999"
`)
	require.NoError(t, os.WriteFile(path, data, 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://jobs.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, ":9999", cfg.Dashboard.Addr)
	// Unset keys stay at defaults.
	assert.Equal(t, float64(10), cfg.API.RateLimitRPS)
	assert.NotEmpty(t, cfg.Device.Path)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not a map"), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverridesEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: https://file.example.com\n"), 0600))

	t.Setenv("JOBPORTAL_API_URL", "https://env.example.com")
	t.Setenv("JOBPORTAL_TIMEOUT", "30s")
	t.Setenv("JOBPORTAL_DASHBOARD_ADDR", "127.0.0.1:7777")
	t.Setenv("JOBPORTAL_DEVICE_DB", "/tmp/dev.db")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "127.0.0.1:7777", cfg.Dashboard.Addr)
	assert.Equal(t, "/tmp/dev.db", cfg.Device.Path)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
}

func TestEnvInvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("JOBPORTAL_TIMEOUT", "not-a-duration")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
}
