// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedToken is returned when a token is not valid base64url or is
	// too short to carry a salt.
	ErrMalformedToken = errors.New("malformed token")

	// ErrAuthenticationFailure is returned when the authenticated decryption
	// fails. Wrong passphrases and corrupted tokens are reported the same way.
	ErrAuthenticationFailure = errors.New("decryption failed")

	// ErrEncoding is returned when the decrypted bytes are not valid UTF-8.
	ErrEncoding = errors.New("decrypted value is not valid UTF-8")

	// ErrRandomSource is returned when the secure random source cannot
	// deliver bytes. It is fatal for the operation.
	ErrRandomSource = errors.New("secure random source unavailable")
)
