// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
)

func TestGeneratorValidator_PasswordOptions(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr error
	}{
		{name: "minimum", length: 1},
		{name: "default", length: generator.DefaultPasswordLength},
		{name: "maximum", length: generator.MaxPasswordLength},
		{name: "zero", length: 0, wantErr: ErrInvalidLength},
		{name: "negative", length: -4, wantErr: ErrInvalidLength},
		{name: "too long", length: generator.MaxPasswordLength + 1, wantErr: ErrInvalidLength},
	}

	v := NewGeneratorValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.PasswordOptions{Length: tt.length})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGeneratorValidator_PassphraseOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    models.PassphraseOptions
		wantErr error
	}{
		{name: "default", opts: generator.DefaultPassphraseOptions()},
		{name: "empty separator", opts: models.PassphraseOptions{Words: 4}},
		{name: "no words", opts: models.PassphraseOptions{Words: 0, Separator: "-"}, wantErr: ErrInvalidWordCount},
		{name: "too many words", opts: models.PassphraseOptions{Words: generator.MaxPassphraseWords + 1}, wantErr: ErrInvalidWordCount},
		{name: "long separator", opts: models.PassphraseOptions{Words: 3, Separator: strings.Repeat("-", MaxSeparatorLength+1)}, wantErr: ErrInvalidSeparator},
	}

	v := NewGeneratorValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.opts)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGeneratorValidator_Errors(t *testing.T) {
	v := NewGeneratorValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "length"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.PasswordOptions{Length: 8}, FieldWords), ErrUnknownField)
}
