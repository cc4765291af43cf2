// Package config loads client configuration from ~/.jobportal/config.yaml
// with environment-variable overrides. A missing file falls back to defaults,
// so the CLI works out of the box against a local backend.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full client configuration.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Device    DeviceConfig    `yaml:"device"`
	Redis     RedisConfig     `yaml:"redis"`
}

// APIConfig points the client at the backend.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Timeout        time.Duration `yaml:"timeout"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps"`
	RateLimitBurst int           `yaml:"rate_limit_burst"`
}

// UnmarshalYAML parses the timeout from "15s" style duration strings, which
// yaml.v3 cannot decode into time.Duration on its own.
func (a *APIConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		BaseURL        string  `yaml:"base_url"`
		Timeout        string  `yaml:"timeout"`
		RateLimitRPS   float64 `yaml:"rate_limit_rps"`
		RateLimitBurst int     `yaml:"rate_limit_burst"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	a.BaseURL = raw.BaseURL
	a.RateLimitRPS = raw.RateLimitRPS
	a.RateLimitBurst = raw.RateLimitBurst
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("config: invalid api.timeout %q: %w", raw.Timeout, err)
		}
		a.Timeout = d
	}
	return nil
}

// DashboardConfig configures the admin/consultancy web server.
type DashboardConfig struct {
	Addr string `yaml:"addr"`
}

// DeviceConfig locates the on-device storage.
type DeviceConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig optionally enables the shared L2 suggestion cache.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// DefaultConfigDir returns ~/.jobportal.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobportal"
	}
	return filepath.Join(home, ".jobportal")
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:5000",
			Timeout:        15 * time.Second,
			RateLimitRPS:   10,
			RateLimitBurst: 20,
		},
		Dashboard: DashboardConfig{Addr: ":8090"},
		Device:    DeviceConfig{Path: filepath.Join(DefaultConfigDir(), "device.db")},
	}
}

// Load reads the config file at path (or the default location when empty),
// fills defaults for unset keys, then applies environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyDefaults(cfg)
	applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = def.API.BaseURL
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = def.API.Timeout
	}
	if cfg.API.RateLimitRPS <= 0 {
		cfg.API.RateLimitRPS = def.API.RateLimitRPS
	}
	if cfg.API.RateLimitBurst <= 0 {
		cfg.API.RateLimitBurst = def.API.RateLimitBurst
	}
	if cfg.Dashboard.Addr == "" {
		cfg.Dashboard.Addr = def.Dashboard.Addr
	}
	if cfg.Device.Path == "" {
		cfg.Device.Path = def.Device.Path
	}
}

// applyEnv layers env vars on top of the file. Set via shell or a .env file
// loaded before this runs.
func applyEnv(cfg *Config) {
	if v := os.Getenv("JOBPORTAL_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("JOBPORTAL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = d
		}
	}
	if v := os.Getenv("JOBPORTAL_DASHBOARD_ADDR"); v != "" {
		cfg.Dashboard.Addr = v
	}
	if v := os.Getenv("JOBPORTAL_DEVICE_DB"); v != "" {
		cfg.Device.Path = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
}
