// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"app": {"version": "2.0.0"},
		"storage": {"driver": "postgres", "db": {"dsn": "postgres://localhost/vault"}},
		"server": {"http_address": ":5000", "request_timeout": "45s", "rate_limit": {"rps": 1.5, "burst": 3}},
		"adapter": {"http_address": "http://localhost:5000", "request_timeout": 1000000000}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.InDelta(t, 1.5, cfg.Server.RateLimit.RPS, 1e-9)
	assert.Equal(t, 3, cfg.Server.RateLimit.Burst)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.FilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yml", `
app:
  version: 3.1.0
storage:
  driver: bolt
  bolt:
    path: /data/vault.db
  files:
    vault_dir: /data/csv
server:
  http_address: localhost:5050
  grpc_address: localhost:9090
  request_timeout: 2m
adapter:
  request_timeout: 5s
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "3.1.0", cfg.App.Version)
	assert.Equal(t, DriverBolt, cfg.Storage.Driver)
	assert.Equal(t, "/data/vault.db", cfg.Storage.Bolt.Path)
	assert.Equal(t, "/data/csv", cfg.Storage.Files.VaultDir)
	assert.Equal(t, "localhost:5050", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 2*time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{name: "unsupported extension", file: "config.toml", content: "a = 1", wantErr: ErrUnsupportedConfigFormat},
		{name: "broken json", file: "config.json", content: "{nope"},
		{name: "bad duration", file: "config.yaml", content: "server:\n  request_timeout: later\n"},
		{name: "bad json duration type", file: "config.json", content: `{"server": {"request_timeout": true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(writeTempConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
