// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

// PassphraseEnv names the environment variable consulted before the keyring
// and the prompt.
const PassphraseEnv = "PASSVAULT_PASSPHRASE"

const keyringService = "passvault"

type passphraseSource int

const (
	sourceEnv passphraseSource = iota
	sourceKeyring
	sourcePrompt
)

// passphrase resolves the passphrase for vault. With confirm set a prompted
// passphrase has to be typed twice.
func (a *App) passphrase(vault string, useKeyring, confirm bool) (string, passphraseSource, error) {
	if v := a.getenv(PassphraseEnv); v != "" {
		return v, sourceEnv, nil
	}

	if useKeyring {
		v, err := keyring.Get(keyringService, vault)
		switch {
		case err == nil && v != "":
			a.logger.Debug().Str("vault", vault).Msg("passphrase taken from keyring")
			return v, sourceKeyring, nil
		case err != nil && !errors.Is(err, keyring.ErrNotFound):
			a.logger.Warn().Err(err).Str("vault", vault).Msg("keyring lookup failed")
		}
	}

	v, err := a.prompt("Passphrase: ")
	if err != nil {
		return "", 0, fmt.Errorf("read passphrase: %w", err)
	}
	if v == "" {
		return "", 0, ErrEmptyPassphrase
	}

	if confirm {
		again, err := a.prompt("Confirm passphrase: ")
		if err != nil {
			return "", 0, fmt.Errorf("read passphrase: %w", err)
		}
		if subtle.ConstantTimeCompare([]byte(v), []byte(again)) != 1 {
			return "", 0, ErrPassphraseMismatch
		}
	}

	return v, sourcePrompt, nil
}

// remember stores a prompted passphrase in the keyring when -keyring is set.
// Failures are reported but do not fail the command.
func (a *App) remember(vault, passphrase string, source passphraseSource, useKeyring bool) {
	if !useKeyring || source != sourcePrompt {
		return
	}
	if err := keyring.Set(keyringService, vault, passphrase); err != nil {
		a.logger.Warn().Err(err).Str("vault", vault).Msg("keyring store failed")
		fmt.Fprintf(a.stderr, "warning: passphrase not stored in keyring: %v\n", err)
		return
	}
	a.logger.Info().Str("vault", vault).Msg("passphrase stored in keyring")
}

func terminalPrompt(stdin *os.File, out io.Writer) promptFunc {
	return func(label string) (string, error) {
		fd := int(stdin.Fd())
		if !term.IsTerminal(fd) {
			return "", ErrNoTerminal
		}

		fmt.Fprint(out, label)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
