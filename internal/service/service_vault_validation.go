// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultValidationService rejects malformed requests before they reach the
// wrapped [VaultService].
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultValidationService) SaveVault(ctx context.Context, req models.SaveRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SaveVault(ctx, req)
}

func (v *VaultValidationService) LoadVault(ctx context.Context, req models.LoadRequest) ([]models.Record, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.LoadVault(ctx, req)
}

func (v *VaultValidationService) ExportVault(ctx context.Context, name string, w io.Writer) error {
	if err := models.CheckVaultName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ExportVault(ctx, name, w)
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}
