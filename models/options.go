// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordOptions controls random password generation.
type PasswordOptions struct {
	// Length is the exact number of characters to produce.
	Length int
	// UseUpper adds A-Z to the pool and forces at least one of them.
	UseUpper bool
	// UseDigits adds 0-9 to the pool and forces at least one of them.
	UseDigits bool
	// UseSpecial adds ASCII punctuation to the pool and forces at least one.
	UseSpecial bool
}

// PassphraseOptions controls diceware passphrase generation.
type PassphraseOptions struct {
	Words     int
	Separator string
}
