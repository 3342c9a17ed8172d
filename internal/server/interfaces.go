// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Transport is a listener with a blocking run loop and a graceful stop.
type Transport interface {
	// RunServer serves until Shutdown is called. It returns nil on a
	// graceful stop.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight
	// requests, bounded by ctx.
	Shutdown(ctx context.Context) error
}
