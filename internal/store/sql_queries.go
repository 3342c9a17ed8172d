// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/migrations"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	vaultsTable  = "vaults"
	recordsTable = "vault_records"

	// insertBatchSize keeps multi-row inserts well below the PostgreSQL
	// limit of 65535 bind parameters.
	insertBatchSize = 500
)

// vaultQueries renders the vault statements for one SQL dialect.
type vaultQueries struct {
	sb sq.StatementBuilderType
}

func newVaultQueries(dialect string) vaultQueries {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		format = sq.Dollar
	}

	return vaultQueries{sb: sq.StatementBuilder.PlaceholderFormat(format)}
}

// upsertVault registers the vault or bumps its updated_at.
func (q vaultQueries) upsertVault(name string, now time.Time) (string, []any, error) {
	return q.sb.Insert(vaultsTable).
		Columns("name", "updated_at").
		Values(name, now).
		Suffix("ON CONFLICT (name) DO UPDATE SET updated_at = excluded.updated_at").
		ToSql()
}

func (q vaultQueries) deleteRecords(name string) (string, []any, error) {
	return q.sb.Delete(recordsTable).
		Where(sq.Eq{"vault_name": name}).
		ToSql()
}

// insertRecords renders one INSERT per batch of records. Positions continue
// across batches.
func (q vaultQueries) insertRecords(name string, records []models.Record) ([]string, [][]any, error) {
	var (
		queries []string
		args    [][]any
	)

	for start := 0; start < len(records); start += insertBatchSize {
		end := min(start+insertBatchSize, len(records))

		insert := q.sb.Insert(recordsTable).
			Columns("vault_name", "position", "website", "username", "password", "notes")
		for i, r := range records[start:end] {
			insert = insert.Values(name, start+i, r.Website, r.Username, r.Password, r.Notes)
		}

		query, batchArgs, err := insert.ToSql()
		if err != nil {
			return nil, nil, err
		}
		queries = append(queries, query)
		args = append(args, batchArgs)
	}

	return queries, args, nil
}

func (q vaultQueries) selectVault(name string) (string, []any, error) {
	return q.sb.Select("name").
		From(vaultsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func (q vaultQueries) selectRecords(name string) (string, []any, error) {
	return q.sb.Select("website", "username", "password", "notes").
		From(recordsTable).
		Where(sq.Eq{"vault_name": name}).
		OrderBy("position").
		ToSql()
}
