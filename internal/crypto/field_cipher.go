// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/fernet/fernet-go"
)

// minFernetTokenLen is version(1) + timestamp(8) + IV(16) + one AES block(16)
// + HMAC-SHA256(32).
const minFernetTokenLen = 1 + 8 + 16 + 16 + 32

// noExpiry disables Fernet timestamp checks; vault tokens do not expire.
const noExpiry = -1

// FieldCipher encrypts and decrypts single text values under a passphrase.
type FieldCipher struct {
	deriver *KeyDeriver
}

// NewFieldCipher returns a cipher that derives its keys with deriver.
func NewFieldCipher(deriver *KeyDeriver) *FieldCipher {
	return &FieldCipher{deriver: deriver}
}

// Encrypt seals plaintext under a key derived from passphrase and a fresh
// salt and returns the token.
func (c *FieldCipher) Encrypt(plaintext string, passphrase []byte) (string, error) {
	salt, err := c.deriver.NewSalt()
	if err != nil {
		return "", err
	}

	key, salt, err := c.deriver.Derive(passphrase, salt)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	fernetKey, err := toFernetKey(&key)
	if err != nil {
		return "", err
	}
	defer clear(fernetKey[:])

	sealed, err := fernet.EncryptAndSign([]byte(plaintext), fernetKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	payload := make([]byte, 0, len(salt)+len(sealed))
	payload = append(payload, salt...)
	payload = append(payload, sealed...)

	return base64.URLEncoding.EncodeToString(payload), nil
}

// Decrypt opens a token produced by [FieldCipher.Encrypt].
//
// It returns [ErrMalformedToken] when the token cannot be decoded,
// [ErrAuthenticationFailure] when the passphrase is wrong or the token was
// altered, and [ErrEncoding] when the plaintext is not UTF-8.
func (c *FieldCipher) Decrypt(token string, passphrase []byte) (string, error) {
	payload, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if len(payload) < SaltSize {
		return "", fmt.Errorf("%w: %d bytes is shorter than the salt", ErrMalformedToken, len(payload))
	}

	salt, sealed := payload[:SaltSize], payload[SaltSize:]
	if !wellFormedFernet(sealed) {
		return "", ErrAuthenticationFailure
	}

	key, _, err := c.deriver.Derive(passphrase, salt)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	fernetKey, err := toFernetKey(&key)
	if err != nil {
		return "", err
	}
	defer clear(fernetKey[:])

	plain := fernet.VerifyAndDecrypt(sealed, noExpiry, []*fernet.Key{fernetKey})
	if plain == nil {
		return "", ErrAuthenticationFailure
	}
	defer clear(plain)

	if !utf8.Valid(plain) {
		return "", ErrEncoding
	}

	return string(plain), nil
}

// toFernetKey parses the encoded form of key, the same text a Fernet key is
// stored and exchanged as.
func toFernetKey(key *DerivedKey) (*fernet.Key, error) {
	encoded := key.Encode()
	fernetKey, err := fernet.DecodeKey(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode fernet key: %w", err)
	}
	return fernetKey, nil
}

// wellFormedFernet reports whether sealed can be handed to the Fernet
// verifier: it must be base64url text long enough to hold one block.
func wellFormedFernet(sealed []byte) bool {
	raw := make([]byte, base64.URLEncoding.DecodedLen(len(sealed)))
	n, err := base64.URLEncoding.Decode(raw, sealed)
	return err == nil && n >= minFernetTokenLen
}
