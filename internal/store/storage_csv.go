// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/google/uuid"
)

const vaultFileMode = 0o600

// csvVaultStorage keeps one CSV file per vault inside a single directory.
// All file access goes through an [os.Root], so a vault name can only ever
// address an entry of that directory.
type csvVaultStorage struct {
	root   *os.Root
	mu     sync.RWMutex
	logger *logger.Logger
}

// NewCSVVaultStorage opens (and creates if needed) dir as the vault
// directory.
func NewCSVVaultStorage(dir string, log *logger.Logger) (VaultStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Err(err).Str("func", "NewCSVVaultStorage").Str("dir", dir).Msg("error creating vault directory")
		return nil, fmt.Errorf("error creating vault directory: %w", err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		log.Err(err).Str("func", "NewCSVVaultStorage").Str("dir", dir).Msg("error opening vault directory")
		return nil, fmt.Errorf("error opening vault directory: %w", err)
	}

	log.Debug().Str("func", "NewCSVVaultStorage").Str("dir", dir).Msg("csv vault storage is ready")
	return &csvVaultStorage{root: root, logger: log}, nil
}

// SaveVault writes the records to a temporary file and renames it over the
// vault, so readers never observe a partially written vault.
func (s *csvVaultStorage) SaveVault(ctx context.Context, name string, records []models.Record) error {
	log := logger.FromContext(ctx)

	if err := models.CheckVaultName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmpName := ".tmp-" + uuid.NewString()
	tmp, err := s.root.OpenFile(tmpName, os.O_CREATE|os.O_EXCL|os.O_WRONLY, vaultFileMode)
	if err != nil {
		log.Err(err).Str("func", "csvVaultStorage.SaveVault").Str("vault", name).Msg("error creating temporary vault file")
		return fmt.Errorf("error creating temporary vault file: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.root.Remove(tmpName)
		}
	}()

	if err = EncodeCSV(tmp, records); err != nil {
		_ = tmp.Close()
		log.Err(err).Str("func", "csvVaultStorage.SaveVault").Str("vault", name).Msg("error writing vault")
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error syncing vault file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing vault file: %w", err)
	}

	if err = s.root.Rename(tmpName, name); err != nil {
		log.Err(err).Str("func", "csvVaultStorage.SaveVault").Str("vault", name).Msg("error replacing vault file")
		return fmt.Errorf("error replacing vault file: %w", err)
	}
	committed = true

	log.Debug().Str("func", "csvVaultStorage.SaveVault").Str("vault", name).Int("records", len(records)).Msg("vault saved")
	return nil
}

func (s *csvVaultStorage) LoadVault(ctx context.Context, name string) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	if err := models.CheckVaultName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := s.root.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrVaultNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "csvVaultStorage.LoadVault").Str("vault", name).Msg("error opening vault file")
		return nil, fmt.Errorf("error opening vault file: %w", err)
	}
	defer f.Close()

	records, err := DecodeCSV(f)
	if err != nil {
		log.Err(err).Str("func", "csvVaultStorage.LoadVault").Str("vault", name).Msg("error reading vault file")
		return nil, err
	}

	return records, nil
}

func (s *csvVaultStorage) Close() error {
	return s.root.Close()
}
