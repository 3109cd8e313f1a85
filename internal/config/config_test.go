package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "./data/ledger.db", cfg.DBPath)
	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9091")
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEFAULT_CURRENCY", "EUR")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9091, cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid sqlite",
			cfg:  Config{Port: 8080, DBPath: "x.db", StorageBackend: BackendSQLite, DefaultCurrency: "USD"},
		},
		{
			name: "valid memory without path",
			cfg:  Config{Port: 1, StorageBackend: BackendMemory, DefaultCurrency: "INR"},
		},
		{
			name:    "bad port",
			cfg:     Config{Port: 70000, StorageBackend: BackendMemory, DefaultCurrency: "USD"},
			wantErr: "invalid port",
		},
		{
			name:    "unknown backend",
			cfg:     Config{Port: 80, StorageBackend: "postgres", DefaultCurrency: "USD"},
			wantErr: "invalid storage backend",
		},
		{
			name:    "sqlite without path",
			cfg:     Config{Port: 80, StorageBackend: BackendSQLite, DefaultCurrency: "USD"},
			wantErr: "DB_PATH is required",
		},
		{
			name:    "unknown currency",
			cfg:     Config{Port: 80, StorageBackend: BackendMemory, DefaultCurrency: "CHF"},
			wantErr: "invalid default currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
