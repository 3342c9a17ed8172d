// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"path/filepath"
	"strings"
)

// MaxVaultNameLength is the longest accepted vault name in bytes.
const MaxVaultNameLength = 255

// ErrInvalidVaultName is returned for vault names that are empty, too long
// or could address anything other than a single entry of the vault store.
var ErrInvalidVaultName = errors.New("invalid vault name")

// CheckVaultName reports whether name can be used as a vault identifier.
func CheckVaultName(name string) error {
	switch {
	case name == "", len(name) > MaxVaultNameLength:
		return ErrInvalidVaultName
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, 0):
		return ErrInvalidVaultName
	case name == "." || name == "..", !filepath.IsLocal(name):
		return ErrInvalidVaultName
	}

	return nil
}
