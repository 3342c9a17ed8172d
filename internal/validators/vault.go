// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field names accepted by [VaultValidator] for field-level scoping.
const (
	// FieldPasswords targets the record list of a save request.
	FieldPasswords = "passwords"

	// FieldFilename targets the vault name of a save or load request. An
	// empty name is valid and means [models.DefaultVaultName].
	FieldFilename = "filename"
)

// VaultValidator checks save and load requests before they reach storage.
type VaultValidator struct{}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SaveRequest:
		return v.validateSaveRequest(value, fields...)
	case *models.SaveRequest:
		return v.validateSaveRequest(*value, fields...)

	case models.LoadRequest:
		return v.validateLoadRequest(value, fields...)
	case *models.LoadRequest:
		return v.validateLoadRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateSaveRequest(request models.SaveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPasswords, FieldFilename}
	}

	for _, f := range fields {
		switch f {
		case FieldPasswords:
			if request.Passwords == nil {
				return ErrNoRecords
			}
			for i, record := range request.Passwords {
				if missing := record.MissingFields(); len(missing) > 0 {
					return fmt.Errorf("%w: record %d has no %s", ErrMissingRecordField, i, strings.Join(missing, ", "))
				}
			}
		case FieldFilename:
			if err := models.CheckVaultName(request.VaultName()); err != nil {
				return fmt.Errorf("%w: %q", err, request.Filename)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateLoadRequest(request models.LoadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFilename}
	}

	for _, f := range fields {
		switch f {
		case FieldFilename:
			if err := models.CheckVaultName(request.VaultName()); err != nil {
				return fmt.Errorf("%w: %q", err, request.Filename)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
