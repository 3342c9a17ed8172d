// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned for bodies that are not a JSON object of the
	// expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidGzip is returned for a gzip Content-Encoding whose body is
	// not gzip data.
	ErrInvalidGzip = errors.New("invalid gzip data")

	// ErrTooManyRequests is reported when a client exhausts its token bucket.
	ErrTooManyRequests = errors.New("too many requests")

	errRouteNotFound = errors.New("not found")
)
