// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// maxAttempts bounds how often an operation classified as [Retryable] runs.
const maxAttempts = 3

// DB is a database handle shared by the SQL vault storage.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	retryDelay         time.Duration
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// maxAttempts is reached. Without a classifier fn runs exactly once.
func (db *DB) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxAttempts {
			break
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Str("op", op).
			Int("attempt", attempt).
			Msg("retryable database error, trying again")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(db.retryDelay * time.Duration(attempt)):
		}
	}

	return err
}
