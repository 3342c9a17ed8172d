// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// RecordCipher applies a [FieldCipher] to every field of a record.
type RecordCipher struct {
	fields *FieldCipher
}

// NewRecordCipher returns a [RecordCipher] backed by fields.
func NewRecordCipher(fields *FieldCipher) *RecordCipher {
	return &RecordCipher{fields: fields}
}

// NewDefaultRecordCipher wires a [RecordCipher] with the standard deriver.
func NewDefaultRecordCipher() *RecordCipher {
	return NewRecordCipher(NewFieldCipher(NewKeyDeriver()))
}

// EncryptRecord implements [RecordEncrypter]. Each field gets its own salt.
// On the first failure the zero Record is returned.
func (c *RecordCipher) EncryptRecord(record models.Record, passphrase []byte) (models.Record, error) {
	return transformRecord(record, func(field, value string) (string, error) {
		token, err := c.fields.Encrypt(value, passphrase)
		if err != nil {
			return "", fmt.Errorf("encrypt %s: %w", field, err)
		}
		return token, nil
	})
}

// DecryptRecord implements [RecordEncrypter]. On the first failure the zero
// Record is returned.
func (c *RecordCipher) DecryptRecord(record models.Record, passphrase []byte) (models.Record, error) {
	return transformRecord(record, func(field, token string) (string, error) {
		value, err := c.fields.Decrypt(token, passphrase)
		if err != nil {
			return "", fmt.Errorf("decrypt %s: %w", field, err)
		}
		return value, nil
	})
}

func transformRecord(in models.Record, fn func(field, value string) (string, error)) (models.Record, error) {
	out := in
	for _, field := range models.RecordFields {
		dst := out.Field(field)

		value, err := fn(field, *dst)
		if err != nil {
			return models.Record{}, err
		}
		*dst = value
	}
	return out, nil
}
