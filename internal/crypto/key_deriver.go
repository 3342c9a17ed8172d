// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the per-token salt in bytes.
	SaltSize = 16
	// KeySize is the length of a derived key in bytes.
	KeySize = 32
	// Iterations is the PBKDF2 work factor.
	Iterations = 100_000
)

// DerivedKey is the raw output of [KeyDeriver.Derive].
type DerivedKey [KeySize]byte

// Encode returns the key in the text form Fernet keys are exchanged in:
// URL-safe base64 with padding.
func (k *DerivedKey) Encode() string {
	return base64.URLEncoding.EncodeToString(k[:])
}

// Destroy overwrites the key material with zeros.
func (k *DerivedKey) Destroy() {
	clear(k[:])
}

// KeyDeriver turns a passphrase and a salt into a [DerivedKey] using
// PBKDF2-HMAC-SHA256.
type KeyDeriver struct {
	iterations int
	random     io.Reader
}

// NewKeyDeriver returns a deriver with [Iterations] rounds that draws salts
// from crypto/rand.
func NewKeyDeriver() *KeyDeriver {
	return &KeyDeriver{
		iterations: Iterations,
		random:     rand.Reader,
	}
}

// NewSalt returns [SaltSize] fresh random bytes.
func (d *KeyDeriver) NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(d.random, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return salt, nil
}

// Derive computes the key for passphrase and salt. When salt is nil a new one
// is generated. The salt actually used is returned next to the key.
//
// The result is a pure function of (passphrase, salt). Empty passphrases are
// accepted.
func (d *KeyDeriver) Derive(passphrase, salt []byte) (DerivedKey, []byte, error) {
	var key DerivedKey

	if salt == nil {
		var err error
		if salt, err = d.NewSalt(); err != nil {
			return key, nil, err
		}
	}

	raw := pbkdf2.Key(passphrase, salt, d.iterations, KeySize, sha256.New)
	copy(key[:], raw)
	clear(raw)

	return key, salt, nil
}
