// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

// EncodeCSV writes records as CSV with the header
// website,username,password,notes.
func EncodeCSV(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(models.RecordFields); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Values()); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// DecodeCSV reads records written by [EncodeCSV] or by any tool producing a
// header row. Columns are located by header name, so their order and any
// extra columns do not matter. Empty input is an empty vault.
func DecodeCSV(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedVault, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	columns := make([]int, len(models.RecordFields))
	for i, field := range models.RecordFields {
		col, ok := index[field]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q column", ErrMalformedVault, field)
		}
		columns[i] = col
	}

	records := make([]models.Record, 0, 16)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedVault, err)
		}

		var rec models.Record
		for i, field := range models.RecordFields {
			*rec.Field(field) = row[columns[i]]
		}
		records = append(records, rec)
	}

	return records, nil
}
