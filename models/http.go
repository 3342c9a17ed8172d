// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultVaultName is used when a request does not name a vault.
const DefaultVaultName = "passwords.csv"

// GeneratePasswordRequest is the body of POST /generate_password.
// Nil fields fall back to the generator defaults.
type GeneratePasswordRequest struct {
	Length     *int  `json:"length,omitempty"`
	UseUpper   *bool `json:"use_upper,omitempty"`
	UseDigits  *bool `json:"use_digits,omitempty"`
	UseSpecial *bool `json:"use_special,omitempty"`
}

// GeneratePassphraseRequest is the body of POST /generate_passphrase.
type GeneratePassphraseRequest struct {
	Words     *int    `json:"words,omitempty"`
	Separator *string `json:"separator,omitempty"`
}

// SaveRequest is the body of POST /save_passwords.
//
// An empty EncryptionPassword selects plaintext storage.
type SaveRequest struct {
	Passwords          []RecordInput `json:"passwords"`
	Filename           string        `json:"filename,omitempty"`
	EncryptionPassword string        `json:"encryption_password,omitempty"`
}

// LoadRequest is the body of POST /load_passwords.
//
// An empty DecryptionPassword returns the stored values as they are.
type LoadRequest struct {
	Filename           string `json:"filename,omitempty"`
	DecryptionPassword string `json:"decryption_password,omitempty"`
}

// VaultName returns the requested vault name or [DefaultVaultName].
func (r SaveRequest) VaultName() string {
	return vaultNameOrDefault(r.Filename)
}

// VaultName returns the requested vault name or [DefaultVaultName].
func (r LoadRequest) VaultName() string {
	return vaultNameOrDefault(r.Filename)
}

func vaultNameOrDefault(name string) string {
	if name == "" {
		return DefaultVaultName
	}
	return name
}
