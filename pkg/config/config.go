// Package config loads browserd configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
)

// Default configuration values exported for documentation and validation
const (
	DefaultHost = "127.0.0.1"

	// DefaultPort 0 lets the runtime pick a free port; the bound address
	// is printed on startup for the client to pick up.
	DefaultPort = 0

	// DefaultMetricsPort 0 disables the metrics listener.
	DefaultMetricsPort = 0

	DefaultHeadless = true
	DefaultLogLevel = "info"
)

// Environment variables honored on top of the config file.
const (
	EnvHost        = "BROWSERD_HOST"
	EnvPort        = "BROWSERD_PORT"
	EnvMetricsPort = "BROWSERD_METRICS_PORT"
	EnvHeadful     = "BROWSERD_HEADFUL"
	EnvLogDir      = "BROWSERD_LOG_DIR"
	EnvLogLevel    = "BROWSERD_LOG_LEVEL"
)

// ServerConfig controls the RPC listener.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
}

// EngineConfig controls the browser engine.
type EngineConfig struct {
	Headless          bool    `yaml:"headless"`
	IgnoreHTTPSErrors bool    `yaml:"ignore_https_errors"`
	TimeoutMillis     float64 `yaml:"timeout_millis"`
}

// LoggingConfig controls the structured event log.
type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// Config represents the complete browserd configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			MetricsPort: DefaultMetricsPort,
		},
		Engine: EngineConfig{
			Headless: DefaultHeadless,
		},
		Logging: LoggingConfig{
			Dir:   defaultLogDir(),
			Level: DefaultLogLevel,
		},
	}
}

func defaultLogDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "browserd", "logs")
	}
	return filepath.Join(os.TempDir(), "browserd", "logs")
}

// ListenAddr returns the host:port the RPC server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// MetricsAddr returns the metrics listen address, empty when disabled.
func (c *Config) MetricsAddr() string {
	if c.Server.MetricsPort <= 0 {
		return ""
	}
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.MetricsPort))
}

// Validate rejects configurations the server cannot serve.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("server.host must not be empty")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.MetricsPort < 0 || c.Server.MetricsPort > 65535 {
		return fmt.Errorf("server.metrics_port out of range: %d", c.Server.MetricsPort)
	}
	if c.Server.MetricsPort != 0 && c.Server.MetricsPort == c.Server.Port {
		return fmt.Errorf("server.metrics_port must differ from server.port")
	}
	if c.Engine.TimeoutMillis < 0 {
		return fmt.Errorf("engine.timeout_millis must not be negative")
	}
	return nil
}
