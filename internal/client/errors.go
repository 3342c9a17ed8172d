// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
)

var (
	ErrUsage              = errors.New("usage error")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrEmptyPassphrase    = errors.New("empty passphrase, use -plain to store records unencrypted")
	ErrPassphraseMismatch = errors.New("passphrases do not match")
	ErrNoTerminal         = errors.New("no terminal to prompt for a passphrase, set " + PassphraseEnv)
)

const serverFailureMessage = "the server failed to process the request, try again later"

// ErrorMessage renders err for the terminal. Server-side failures are
// collapsed into one generic line; everything else is shown as is.
func ErrorMessage(err error) string {
	if errors.Is(err, adapter.ErrInternalServerError) {
		return serverFailureMessage
	}
	return err.Error()
}
