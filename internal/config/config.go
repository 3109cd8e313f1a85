// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmynk/splitledger/internal/models"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds every setting the server needs.
type Config struct {
	Port            int    `mapstructure:"port"`
	DBPath          string `mapstructure:"db_path"`
	StorageBackend  string `mapstructure:"storage_backend"`
	LogLevel        string `mapstructure:"log_level"`
	DefaultCurrency string `mapstructure:"default_currency"`
}

// Load reads an optional .env file, then environment variables
// (PORT, DB_PATH, STORAGE_BACKEND, LOG_LEVEL, DEFAULT_CURRENCY) over defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("port", 8080)
	v.SetDefault("db_path", "./data/ledger.db")
	v.SetDefault("storage_backend", BackendSQLite)
	v.SetDefault("log_level", "info")
	v.SetDefault("default_currency", string(models.DefaultCurrency))

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.StorageBackend = strings.ToLower(cfg.StorageBackend)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	switch c.StorageBackend {
	case BackendSQLite:
		if c.DBPath == "" {
			problems = append(problems, "DB_PATH is required for the sqlite backend")
		}
	case BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be sqlite or memory", c.StorageBackend))
	}

	if !models.IsCurrency(models.CurrencyCode(c.DefaultCurrency)) {
		problems = append(problems, fmt.Sprintf("invalid default currency %q", c.DefaultCurrency))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
