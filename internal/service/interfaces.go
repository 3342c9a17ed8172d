// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultService stores and restores vaults, encrypting every field when a
// passphrase is supplied.
type VaultService interface {
	// SaveVault replaces the named vault and returns the name used.
	SaveVault(ctx context.Context, req models.SaveRequest) (string, error)
	// LoadVault returns the records of the vault, decrypted when the request
	// carries a passphrase. An unknown vault loads as an empty list.
	LoadVault(ctx context.Context, req models.LoadRequest) ([]models.Record, error)
	// ExportVault writes the stored form of the vault to w as CSV.
	ExportVault(ctx context.Context, name string, w io.Writer) error
}

// GeneratorService produces random passwords and diceware passphrases.
type GeneratorService interface {
	GeneratePassword(ctx context.Context, req models.GeneratePasswordRequest) (string, error)
	GeneratePassphrase(ctx context.Context, req models.GeneratePassphraseRequest) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// VaultServiceWrapper decorates a VaultService with extra behaviour such as
// validation or instrumentation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}
