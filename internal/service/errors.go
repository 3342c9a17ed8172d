// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure so transports can
	// answer with a client error.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
