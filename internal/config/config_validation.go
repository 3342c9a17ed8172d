// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return cfg.Storage.validate()
}

func (s Storage) validate() error {
	switch s.Driver {
	case DriverCSV:
		if s.Files.VaultDir == "" {
			return fmt.Errorf("%w: csv driver needs a vault directory", ErrInvalidStorageConfigs)
		}
	case DriverSQLite, DriverPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, s.Driver)
		}
	case DriverBolt:
		if s.Bolt.Path == "" {
			return fmt.Errorf("%w: bolt driver needs a file path", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
