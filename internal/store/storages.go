// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// NewVaultStorage opens the backend selected by cfg.Driver. SQL backends are
// migrated before use.
func NewVaultStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (VaultStorage, error) {
	switch cfg.Driver {
	case config.DriverCSV:
		return NewCSVVaultStorage(cfg.Files.VaultDir, log)

	case config.DriverSQLite, config.DriverPostgres:
		connect := NewConnectSQLite
		if cfg.Driver == config.DriverPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			log.Err(err).Str("func", "NewVaultStorage").Str("driver", cfg.Driver).Msg("failed to migrate database")
			return nil, err
		}
		return NewSQLVaultStorage(db), nil

	case config.DriverBolt:
		return NewBoltVaultStorage(cfg.Bolt.Path, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}
