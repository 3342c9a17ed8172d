// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"DOTENV",
	"APP_VERSION",
	"STORAGE_DRIVER",
	"STORAGE_FILES_VAULT_DIR",
	"STORAGE_DB_DATABASE_URI",
	"STORAGE_BOLT_PATH",
	"SERVER_ADDRESS",
	"SERVER_GRPC_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_RATE_LIMIT_RPS",
	"SERVER_RATE_LIMIT_BURST",
	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",
}

// clearEnvVars unsets every variable the config reads and restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.yaml",
		"DOTENV": "/path/to/.env",

		"APP_VERSION": "1.2.3",

		"STORAGE_DRIVER":          "sqlite",
		"STORAGE_FILES_VAULT_DIR": "/var/vaults",
		"STORAGE_DB_DATABASE_URI": "file:vault.sqlite",
		"STORAGE_BOLT_PATH":       "/var/vault.db",

		"SERVER_ADDRESS":          "localhost:5000",
		"SERVER_GRPC_ADDRESS":     "localhost:9090",
		"SERVER_REQUEST_TIMEOUT":  "15s",
		"SERVER_RATE_LIMIT_RPS":   "2.5",
		"SERVER_RATE_LIMIT_BURST": "4",

		"ADAPTER_ADDRESS":         "http://vault.local:5000",
		"ADAPTER_REQUEST_TIMEOUT": "1m",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.yaml", cfg.FilePath)
	assert.Equal(t, "/path/to/.env", cfg.DotEnvPath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/var/vaults", cfg.Storage.Files.VaultDir)
	assert.Equal(t, "file:vault.sqlite", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/vault.db", cfg.Storage.Bolt.Path)

	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Server.RateLimit.RPS, 1e-9)
	assert.Equal(t, 4, cfg.Server.RateLimit.Burst)

	assert.Equal(t, "http://vault.local:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidNumber(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_RATE_LIMIT_BURST": "many"})

	require.Error(t, parseEnv(&StructuredConfig{}))
}
