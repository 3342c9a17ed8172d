// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Field names accepted by [GeneratorValidator].
const (
	FieldLength    = "length"
	FieldWords     = "words"
	FieldSeparator = "separator"
)

// MaxSeparatorLength bounds the passphrase separator in bytes.
const MaxSeparatorLength = 16

// GeneratorValidator checks generation options after defaults are applied.
type GeneratorValidator struct{}

func NewGeneratorValidator() Validator {
	return &GeneratorValidator{}
}

func (v *GeneratorValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PasswordOptions:
		return v.validatePasswordOptions(value, fields...)
	case *models.PasswordOptions:
		return v.validatePasswordOptions(*value, fields...)

	case models.PassphraseOptions:
		return v.validatePassphraseOptions(value, fields...)
	case *models.PassphraseOptions:
		return v.validatePassphraseOptions(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *GeneratorValidator) validatePasswordOptions(opts models.PasswordOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			if opts.Length < 1 || opts.Length > generator.MaxPasswordLength {
				return fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidLength, opts.Length, generator.MaxPasswordLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GeneratorValidator) validatePassphraseOptions(opts models.PassphraseOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWords, FieldSeparator}
	}

	for _, f := range fields {
		switch f {
		case FieldWords:
			if opts.Words < 1 || opts.Words > generator.MaxPassphraseWords {
				return fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidWordCount, opts.Words, generator.MaxPassphraseWords)
			}
		case FieldSeparator:
			if len(opts.Separator) > MaxSeparatorLength {
				return fmt.Errorf("%w: longer than %d bytes", ErrInvalidSeparator, MaxSeparatorLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
