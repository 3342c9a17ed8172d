// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// sqlVaultStorage is the SQLite/PostgreSQL implementation of
// [VaultStorage]. A vault is a row of "vaults" plus its ordered rows of
// "vault_records".
type sqlVaultStorage struct {
	db      *DB
	queries vaultQueries
	now     func() time.Time
}

// NewSQLVaultStorage builds a [VaultStorage] on top of a migrated [DB].
func NewSQLVaultStorage(db *DB) VaultStorage {
	return &sqlVaultStorage{
		db:      db,
		queries: newVaultQueries(db.dialect),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SaveVault replaces the records of the vault inside one transaction.
func (s *sqlVaultStorage) SaveVault(ctx context.Context, name string, records []models.Record) error {
	if err := models.CheckVaultName(name); err != nil {
		return err
	}

	return s.db.withRetry(ctx, "save vault", func() error {
		return s.saveVault(ctx, name, records)
	})
}

func (s *sqlVaultStorage) saveVault(ctx context.Context, name string, records []models.Record) error {
	log := logger.FromContext(ctx)

	upsert, upsertArgs, err := s.queries.upsertVault(name, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := s.queries.deleteRecords(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	inserts, insertArgs, err := s.queries.insertRecords(name, records)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqlVaultStorage.saveVault").Str("vault", name).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, upsert, upsertArgs...); err != nil {
		log.Err(err).Str("func", "sqlVaultStorage.saveVault").Str("vault", name).Msg("failed to upsert vault")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "sqlVaultStorage.saveVault").Str("vault", name).Msg("failed to delete old vault records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for i, insert := range inserts {
		if _, err = tx.ExecContext(ctx, insert, insertArgs[i]...); err != nil {
			log.Err(err).
				Str("func", "sqlVaultStorage.saveVault").
				Str("vault", name).
				Int("batch", i).
				Msg("failed to insert vault records")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqlVaultStorage.saveVault").Str("vault", name).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqlVaultStorage) LoadVault(ctx context.Context, name string) ([]models.Record, error) {
	if err := models.CheckVaultName(name); err != nil {
		return nil, err
	}

	var records []models.Record
	err := s.db.withRetry(ctx, "load vault", func() error {
		var err error
		records, err = s.loadVault(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *sqlVaultStorage) loadVault(ctx context.Context, name string) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	existsQuery, existsArgs, err := s.queries.selectVault(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found string
	err = s.db.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVaultNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqlVaultStorage.loadVault").Str("vault", name).Msg("failed to look up vault")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := s.queries.selectRecords(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlVaultStorage.loadVault").Str("vault", name).Msg("failed to query vault records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 16)
	for rows.Next() {
		var r models.Record
		if err = rows.Scan(&r.Website, &r.Username, &r.Password, &r.Notes); err != nil {
			log.Err(err).Str("func", "sqlVaultStorage.loadVault").Str("vault", name).Msg("failed to scan vault record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "sqlVaultStorage.loadVault").Str("vault", name).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (s *sqlVaultStorage) Close() error {
	return s.db.Close()
}
