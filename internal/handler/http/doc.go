// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the pass-vault server.
//
// Handlers decode JSON bodies, call the service layer and encode either the
// success payload or an {success:false, error} body whose status comes from
// the errors.Is table in errors_mapper.go. Request tracing, access logging,
// response compression and per-client rate limiting are applied as chi
// middleware.
package http
