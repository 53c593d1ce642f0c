// Package config loads the CLI/server configuration from a YAML file with
// environment overrides for deployment-sensitive values.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	// Listen is the HTTP bind address for serve mode.
	Listen string `yaml:"listen" validate:"required,hostname_port"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Variant selects the editor rules: basic or strict.
	Variant string `yaml:"variant" validate:"oneof=basic strict"`

	// API configures the remote article/session backend.
	API APIConfig `yaml:"api"`

	// Redis configures the optional shared draft store. Empty address means
	// drafts stay on the local filesystem.
	Redis RedisConfig `yaml:"redis"`

	// PollInterval is the session refresh cadence for watch mode.
	PollInterval time.Duration `yaml:"poll_interval" validate:"min=250ms"`
}

// APIConfig points at the remote support backend.
type APIConfig struct {
	BaseURL  string `yaml:"base_url" validate:"omitempty,url"`
	AdminKey string `yaml:"admin_key"`
}

// RedisConfig configures the redis draft store.
type RedisConfig struct {
	Address  string `yaml:"address" validate:"omitempty,hostname_port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"min=0"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen:       "127.0.0.1:8080",
		LogLevel:     "info",
		Variant:      "strict",
		PollInterval: 3 * time.Second,
	}
}

// Load reads the config file at path (if it exists), applies environment
// overrides, and validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults + env only.
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnv(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnv lets deployments override secrets and endpoints without touching
// the file on disk.
func applyEnv(cfg *Config) {
	if v := os.Getenv("BRAIN_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("BRAIN_ADMIN_KEY"); v != "" {
		cfg.API.AdminKey = v
	}
	if v := os.Getenv("BRAIN_REDIS_ADDR"); v != "" {
		cfg.Redis.Address = v
	}
	if v := os.Getenv("BRAIN_LISTEN"); v != "" {
		cfg.Listen = v
	}
}
