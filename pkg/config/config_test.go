package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultMetricsPort, cfg.Server.MetricsPort)
	assert.True(t, cfg.Engine.Headless)
	assert.False(t, cfg.Engine.IgnoreHTTPSErrors)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Logging.Dir)
	require.NoError(t, cfg.Validate())
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browserd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 7733
engine:
  headless: false
  ignore_https_errors: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7733, cfg.Server.Port)
	assert.False(t, cfg.Engine.Headless)
	assert.True(t, cfg.Engine.IgnoreHTTPSErrors)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvHost, "0.0.0.0")
	t.Setenv(EnvPort, "8899")
	t.Setenv(EnvHeadful, "1")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8899, cfg.Server.Port)
	assert.False(t, cfg.Engine.Headless)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browserd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7733\n"), 0644))
	t.Setenv(EnvPort, "9900")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9900, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty host", func(c *Config) { c.Server.Host = "" }},
		{"negative port", func(c *Config) { c.Server.Port = -1 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"metrics port collides", func(c *Config) {
			c.Server.Port = 4488
			c.Server.MetricsPort = 4488
		}},
		{"negative timeout", func(c *Config) { c.Engine.TimeoutMillis = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestListenAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 4455
	assert.Equal(t, "127.0.0.1:4455", cfg.ListenAddr())

	assert.Empty(t, cfg.MetricsAddr())
	cfg.Server.MetricsPort = 4456
	assert.Equal(t, "127.0.0.1:4456", cfg.MetricsAddr())
}
