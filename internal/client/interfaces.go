// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args[0] and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// promptFunc reads a secret from the user without echoing it.
type promptFunc func(label string) (string, error)

// viewFunc shows records interactively until the user quits.
type viewFunc func(ctx context.Context, title string, records []models.Record) error
