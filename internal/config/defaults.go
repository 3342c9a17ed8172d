// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Storage drivers.
const (
	DriverCSV      = "csv"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
)

const defaultDotEnvPath = ".env"

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Storage: Storage{
			Driver: DriverCSV,
			Files:  Files{VaultDir: "vaults"},
			DB:     DB{DSN: "vault.sqlite"},
			Bolt:   Bolt{Path: "vault.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:5000",
			RequestTimeout: 30 * time.Second,
			RateLimit: RateLimit{
				RPS:   5,
				Burst: 10,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:5000",
			RequestTimeout: 30 * time.Second,
		},
	}
}
