// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import "errors"

var (
	ErrInvalidLength    = errors.New("invalid password length")
	ErrInvalidWordCount = errors.New("invalid passphrase word count")
	ErrRandomSource     = errors.New("secure random source unavailable")
)
