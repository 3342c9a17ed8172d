// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRecordField = errors.New("record field is missing")
	ErrNoRecords          = errors.New("passwords list is required")
	ErrInvalidSeparator   = errors.New("invalid passphrase separator")

	ErrInvalidVaultName = models.ErrInvalidVaultName
	ErrInvalidLength    = generator.ErrInvalidLength
	ErrInvalidWordCount = generator.ErrInvalidWordCount
)
