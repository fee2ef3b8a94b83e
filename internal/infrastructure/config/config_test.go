package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/creatorfund/creatorfund/internal/shared/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Distribution.Interval)
	assert.Equal(t, 4, cfg.Distribution.Concurrency)
	assert.Equal(t, "USD", cfg.Distribution.Currency)
	assert.False(t, cfg.Redis.Enabled)
	assert.Same(t, cfg, Get())
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := Load("", writeConfig(t, `
distribution:
  interval: 1h
  concurrency: 8
  currency: EUR
seed:
  creators_file: fixtures/creators.yaml
`))
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.Distribution.Interval)
	assert.Equal(t, 8, cfg.Distribution.Concurrency)
	assert.Equal(t, "EUR", cfg.Distribution.Currency)
	assert.Equal(t, "fixtures/creators.yaml", cfg.Seed.CreatorsFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CREATORFUND_DISTRIBUTION_CURRENCY", "JPY")
	t.Setenv("CREATORFUND_REDIS_ENABLED", "true")

	cfg, err := Load("", writeConfig(t, "distribution:\n  currency: EUR\n"))
	require.NoError(t, err)

	assert.Equal(t, "JPY", cfg.Distribution.Currency)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoad_EnvSetsServerMode(t *testing.T) {
	cfg, err := Load("release", writeConfig(t, "server:\n  mode: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load("", writeConfig(t, "server: [unterminated\n"))
	assert.Error(t, err)
}
