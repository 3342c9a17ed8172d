// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks requests before they reach generation or vault
// storage.
//
// Validators return sentinel errors matched with errors.Is. The HTTP layer
// maps all of them to 400 Bad Request.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
// Passing no field names validates every field the implementation knows.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
