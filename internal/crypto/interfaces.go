// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/record_encrypter_mock.go -package=mock

// RecordEncrypter encrypts and decrypts whole vault records with a
// passphrase supplied per call.
type RecordEncrypter interface {
	// EncryptRecord replaces every field of record with a token.
	EncryptRecord(record models.Record, passphrase []byte) (models.Record, error)

	// DecryptRecord turns every token of record back into plaintext.
	DecryptRecord(record models.Record, passphrase []byte) (models.Record, error)
}
