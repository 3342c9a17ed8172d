// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the pass-vault REST API.
//
// [ServerAdapter] hides the transport from the CLI. HTTP status codes are
// mapped to the sentinel errors in errors.go so callers can branch with
// [errors.Is]; the server's error message travels in the wrapped text.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a pass-vault server.
type ServerAdapter interface {
	// GeneratePassword asks the server for a random password. Nil request
	// fields use the server defaults.
	GeneratePassword(ctx context.Context, req models.GeneratePasswordRequest) (string, error)

	// GeneratePassphrase asks the server for a diceware passphrase.
	GeneratePassphrase(ctx context.Context, req models.GeneratePassphraseRequest) (string, error)

	// SaveVault replaces a vault on the server and returns the name it was
	// stored under.
	SaveVault(ctx context.Context, req models.SaveRequest) (string, error)

	// LoadVault returns the vault records, decrypted by the server when the
	// request carries a passphrase.
	LoadVault(ctx context.Context, req models.LoadRequest) ([]models.Record, error)

	// DownloadVault streams the stored CSV file of the vault into w.
	DownloadVault(ctx context.Context, name string, w io.Writer) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
