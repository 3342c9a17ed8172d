// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [VaultStorage] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrVaultNotFound is returned when the named vault has never been saved.
	ErrVaultNotFound = errors.New("vault was not found")

	// ErrMalformedVault is returned when a stored vault cannot be parsed:
	// a CSV header without one of the record columns, a ragged row, or an
	// undecodable bolt value.
	ErrMalformedVault = errors.New("malformed vault")

	// ErrUnknownDriver is returned by [NewVaultStorage] for an unsupported
	// storage.driver value.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL storage when a statement fails before any vault logic applies.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan vault record row")

	// ErrScanningRows is returned when iteration over a result set fails.
	ErrScanningRows = errors.New("failed to scan vault record rows")
)
