// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func validInput() models.RecordInput {
	return models.RecordInput{
		Website:  ptr("example.com"),
		Username: ptr("alice"),
		Password: ptr("s3cr3t"),
		Notes:    ptr(""),
	}
}

func TestNewVaultValidator(t *testing.T) {
	require.NotNil(t, NewVaultValidator())
}

func TestVaultValidator_UnsupportedType(t *testing.T) {
	err := NewVaultValidator().Validate(context.Background(), models.Record{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestVaultValidator_SaveRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SaveRequest
		fields  []string
		wantErr error
	}{
		{
			name: "valid with default vault",
			req:  models.SaveRequest{Passwords: []models.RecordInput{validInput()}},
		},
		{
			name: "valid empty list",
			req:  models.SaveRequest{Passwords: []models.RecordInput{}, Filename: "empty.csv"},
		},
		{
			name:    "passwords key missing",
			req:     models.SaveRequest{},
			wantErr: ErrNoRecords,
		},
		{
			name: "record without password",
			req: models.SaveRequest{Passwords: []models.RecordInput{
				validInput(),
				{Website: ptr("a"), Username: ptr("b"), Notes: ptr("")},
			}},
			wantErr: ErrMissingRecordField,
		},
		{
			name:    "traversal in filename",
			req:     models.SaveRequest{Passwords: []models.RecordInput{validInput()}, Filename: "../../etc/passwd"},
			wantErr: ErrInvalidVaultName,
		},
		{
			name:   "only filename checked",
			req:    models.SaveRequest{Filename: "ok.csv"},
			fields: []string{FieldFilename},
		},
		{
			name:    "unknown field",
			req:     models.SaveRequest{},
			fields:  []string{"owner"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewVaultValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			assert.ErrorIs(t, v.Validate(context.Background(), &tt.req, tt.fields...), tt.wantErr)
		})
	}
}

func TestVaultValidator_MissingFieldsAreNamed(t *testing.T) {
	req := models.SaveRequest{Passwords: []models.RecordInput{{Website: ptr("a")}}}

	err := NewVaultValidator().Validate(context.Background(), req)
	require.ErrorIs(t, err, ErrMissingRecordField)
	assert.Contains(t, err.Error(), "record 0 has no username, password, notes")
}

func TestVaultValidator_LoadRequest(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoadRequest{}))
	assert.NoError(t, v.Validate(ctx, &models.LoadRequest{Filename: "work.csv", DecryptionPassword: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoadRequest{Filename: "a/b"}), ErrInvalidVaultName)
	assert.ErrorIs(t, v.Validate(ctx, models.LoadRequest{}, FieldPasswords), ErrUnknownField)
}
