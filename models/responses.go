// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GeneratePasswordResponse is returned by POST /generate_password.
type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

// GeneratePassphraseResponse is returned by POST /generate_passphrase.
type GeneratePassphraseResponse struct {
	Passphrase string `json:"passphrase"`
}

// SaveResponse is returned by POST /save_passwords on success.
type SaveResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
}

// LoadResponse is returned by POST /load_passwords on success.
type LoadResponse struct {
	Success   bool     `json:"success"`
	Passwords []Record `json:"passwords"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
