// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_storage_mock.go -package=mock

// VaultStorage persists named vaults. A vault is an ordered list of records
// stored exactly as given, encrypted or not.
type VaultStorage interface {
	// SaveVault replaces the whole content of the named vault, creating it
	// when needed.
	SaveVault(ctx context.Context, name string, records []models.Record) error
	// LoadVault returns the records of the named vault in saved order, or
	// [ErrVaultNotFound].
	LoadVault(ctx context.Context, name string) ([]models.Record, error)
	// Close releases the underlying files or connections.
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
