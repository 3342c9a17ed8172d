// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random passwords and diceware passphrases.
// All randomness comes from crypto/rand.
package generator
