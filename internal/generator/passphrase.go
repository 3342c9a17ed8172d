// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"fmt"
	"strings"

	"github.com/sethvargo/go-diceware/diceware"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	DefaultPassphraseWords = 6
	DefaultSeparator       = "-"
	MaxPassphraseWords     = 32
)

// DefaultPassphraseOptions returns six words joined by "-".
func DefaultPassphraseOptions() models.PassphraseOptions {
	return models.PassphraseOptions{
		Words:     DefaultPassphraseWords,
		Separator: DefaultSeparator,
	}
}

// Passphrase returns opts.Words diceware words joined by opts.Separator.
func (g *Generator) Passphrase(opts models.PassphraseOptions) (string, error) {
	if opts.Words < 1 || opts.Words > MaxPassphraseWords {
		return "", fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidWordCount, opts.Words, MaxPassphraseWords)
	}

	words, err := g.words(opts.Words)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	return strings.Join(words, opts.Separator), nil
}

func dicewareWords(n int) ([]string, error) {
	return diceware.Generate(n)
}
