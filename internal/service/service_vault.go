// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// WeakPassphraseLength is the recommended minimum passphrase length in
// characters. Shorter passphrases are accepted but reported.
const WeakPassphraseLength = 8

type vaultService struct {
	storage store.VaultStorage
	cipher  crypto.RecordEncrypter
	workers int

	logger *logger.Logger
}

// NewVaultService builds the core vault service. Records are encrypted and
// decrypted on up to GOMAXPROCS goroutines.
func NewVaultService(storage store.VaultStorage, cipher crypto.RecordEncrypter, logger *logger.Logger) VaultService {
	return &vaultService{
		storage: storage,
		cipher:  cipher,
		workers: runtime.GOMAXPROCS(0),
		logger:  logger,
	}
}

// IsWeakPassphrase reports whether a non-empty passphrase is shorter than
// [WeakPassphraseLength] characters.
func IsWeakPassphrase(passphrase string) bool {
	return passphrase != "" && utf8.RuneCountInString(passphrase) < WeakPassphraseLength
}

func (s *vaultService) SaveVault(ctx context.Context, req models.SaveRequest) (string, error) {
	log := logger.FromContext(ctx)
	name := req.VaultName()

	records := make([]models.Record, len(req.Passwords))
	for i, in := range req.Passwords {
		records[i] = in.ToRecord()
	}

	if req.EncryptionPassword == "" {
		log.Info().Str("func", "vaultService.SaveVault").Str("vault", name).Msg("saving vault without encryption")
	} else {
		if IsWeakPassphrase(req.EncryptionPassword) {
			log.Warn().
				Str("func", "vaultService.SaveVault").
				Str("vault", name).
				Int("min_length", WeakPassphraseLength).
				Msg("vault is protected by a weak passphrase")
		}

		passphrase := []byte(req.EncryptionPassword)
		defer clear(passphrase)

		var err error
		records, err = s.transform(ctx, records, func(r models.Record) (models.Record, error) {
			return s.cipher.EncryptRecord(r, passphrase)
		})
		if err != nil {
			log.Err(err).Str("func", "vaultService.SaveVault").Str("vault", name).Msg("failed to encrypt vault")
			return "", fmt.Errorf("encrypt vault: %w", err)
		}
	}

	if err := s.storage.SaveVault(ctx, name, records); err != nil {
		return "", fmt.Errorf("save vault: %w", err)
	}

	log.Info().Str("func", "vaultService.SaveVault").Str("vault", name).Int("records", len(records)).Msg("vault saved")
	return name, nil
}

func (s *vaultService) LoadVault(ctx context.Context, req models.LoadRequest) ([]models.Record, error) {
	log := logger.FromContext(ctx)
	name := req.VaultName()

	records, err := s.storage.LoadVault(ctx, name)
	if errors.Is(err, store.ErrVaultNotFound) {
		log.Info().Str("func", "vaultService.LoadVault").Str("vault", name).Msg("vault does not exist, returning empty list")
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}

	if req.DecryptionPassword == "" {
		return records, nil
	}

	passphrase := []byte(req.DecryptionPassword)
	defer clear(passphrase)

	records, err = s.transform(ctx, records, func(r models.Record) (models.Record, error) {
		return s.cipher.DecryptRecord(r, passphrase)
	})
	if err != nil {
		log.Warn().Err(err).Str("func", "vaultService.LoadVault").Str("vault", name).Msg("failed to decrypt vault")
		return nil, fmt.Errorf("decrypt vault: %w", err)
	}

	return records, nil
}

func (s *vaultService) ExportVault(ctx context.Context, name string, w io.Writer) error {
	records, err := s.storage.LoadVault(ctx, name)
	if err != nil {
		return fmt.Errorf("export vault: %w", err)
	}

	return store.EncodeCSV(w, records)
}

// transform applies fn to every record concurrently and keeps the input
// order. The first error cancels the remaining work and no partial result
// is returned.
func (s *vaultService) transform(ctx context.Context, records []models.Record, fn func(models.Record) (models.Record, error)) ([]models.Record, error) {
	out := make([]models.Record, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.workers, 1))

	for i, r := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := fn(r)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
