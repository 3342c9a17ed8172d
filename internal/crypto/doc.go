// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the password-based field encryption used for
// vault records.
//
// A [KeyDeriver] stretches a passphrase and a 16-byte salt into a 32-byte key
// with PBKDF2-HMAC-SHA256 (100 000 iterations). A [FieldCipher] seals one text
// value with that key using Fernet and emits a token:
//
//	token := base64url( salt(16) || fernet_token )
//
// Every call draws a fresh salt, so two fields never share a key even under
// the same passphrase. Decryption reads the salt back from the token and
// re-derives the key. A wrong passphrase and a damaged token both yield
// [ErrAuthenticationFailure].
//
// [RecordCipher] applies the field transform to all four fields of a
// [models.Record] and never returns a half-processed record.
//
// Nothing in this package logs, retries or keeps state between calls; all
// types are safe for concurrent use.
package crypto
