// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the pass-vault server.
// It is populated by merging environment variables, command-line flags, an
// optional JSON or YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the vault backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener, timeout and rate limit settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// FilePath is the optional path to a JSON (.json) or YAML (.yaml, .yml)
	// configuration file.
	// Env: CONFIG. Flags: -c, -config.
	FilePath string `env:"CONFIG"`

	// DotEnvPath points to a dotenv file loaded into the process environment
	// before env parsing. Defaults to ".env" when that file exists.
	// Env: DOTENV
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage selects the vault backend and carries the settings of each one.
type Storage struct {
	// Driver is one of csv, sqlite, postgres, bolt.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	Files Files `envPrefix:"FILES_"`
	DB    DB    `envPrefix:"DB_"`
	Bolt  Bolt  `envPrefix:"BOLT_"`
}

// Files configures the CSV backend.
type Files struct {
	// VaultDir is the directory holding one CSV file per vault.
	// Env: STORAGE_FILES_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`
}

// DB configures the SQL backends.
type DB struct {
	// DSN is a SQLite file DSN or a PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Bolt configures the bbolt backend.
type Bolt struct {
	// Path is the bbolt database file.
	// Env: STORAGE_BOLT_PATH
	Path string `env:"PATH"`
}

// Server holds settings for the inbound transports.
type Server struct {
	// HTTPAddress is the REST listener in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress enables the gRPC health listener when set.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout caps the handling time of a single HTTP request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

// RateLimit configures the per-client token bucket in front of the vault
// endpoints. A negative RPS disables limiting.
type RateLimit struct {
	// Env: SERVER_RATE_LIMIT_RPS
	RPS float64 `env:"RPS"`
	// Env: SERVER_RATE_LIMIT_BURST
	Burst int `env:"BURST"`
}

// Enabled reports whether requests should be limited.
func (r RateLimit) Enabled() bool {
	return r.RPS > 0 && r.Burst > 0
}

// Adapter holds the address the CLI client talks to.
type Adapter struct {
	// HTTPAddress is the server base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
// Sources are applied in priority order; the first non-zero value wins:
//  1. Environment variables (after an optional dotenv file)
//  2. Command-line flags
//  3. JSON/YAML file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:])
}

func getStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
