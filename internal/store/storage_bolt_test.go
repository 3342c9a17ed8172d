// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestBoltStorage(t *testing.T) (VaultStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault.db")

	s, err := NewBoltVaultStorage(path, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestBoltVaultStorage_SaveLoad(t *testing.T) {
	s, _ := newTestBoltStorage(t)
	ctx := testContext()

	require.NoError(t, s.SaveVault(ctx, "work.csv", sampleRecords()))

	got, err := s.LoadVault(ctx, "work.csv")
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)
}

func TestBoltVaultStorage_KeepsOrderBeyondOneByte(t *testing.T) {
	s, _ := newTestBoltStorage(t)
	ctx := testContext()

	records := make([]models.Record, 300)
	for i := range records {
		records[i] = models.Record{Website: filepath.Join("site", string(rune('a'+i%26))), Notes: string(rune(i))}
	}
	require.NoError(t, s.SaveVault(ctx, "big", records))

	got, err := s.LoadVault(ctx, "big")
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestBoltVaultStorage_SaveReplaces(t *testing.T) {
	s, _ := newTestBoltStorage(t)
	ctx := testContext()

	require.NoError(t, s.SaveVault(ctx, "work.csv", sampleRecords()))
	require.NoError(t, s.SaveVault(ctx, "work.csv", sampleRecords()[:1]))

	got, err := s.LoadVault(ctx, "work.csv")
	require.NoError(t, err)
	assert.Equal(t, sampleRecords()[:1], got)
}

func TestBoltVaultStorage_VaultsAreIsolated(t *testing.T) {
	s, _ := newTestBoltStorage(t)
	ctx := testContext()

	require.NoError(t, s.SaveVault(ctx, "a", sampleRecords()[:1]))
	require.NoError(t, s.SaveVault(ctx, "b", sampleRecords()[1:]))

	a, err := s.LoadVault(ctx, "a")
	require.NoError(t, err)
	b, err := s.LoadVault(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, sampleRecords()[:1], a)
	assert.Equal(t, sampleRecords()[1:], b)
}

func TestBoltVaultStorage_NotFound(t *testing.T) {
	s, _ := newTestBoltStorage(t)

	_, err := s.LoadVault(testContext(), "absent")
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestBoltVaultStorage_InvalidName(t *testing.T) {
	s, _ := newTestBoltStorage(t)

	assert.ErrorIs(t, s.SaveVault(testContext(), "", nil), models.ErrInvalidVaultName)
}

func TestBoltVaultStorage_MalformedValue(t *testing.T) {
	s, path := newTestBoltStorage(t)
	ctx := testContext()
	require.NoError(t, s.SaveVault(ctx, "work.csv", sampleRecords()))

	raw := s.(*boltVaultStorage).db
	require.NoError(t, raw.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(vaultsBucket).Bucket([]byte("work.csv")).Put(positionKey(0), []byte("{not json"))
	}))

	_, err := s.LoadVault(ctx, "work.csv")
	assert.ErrorIs(t, err, ErrMalformedVault)
	assert.FileExists(t, path)
}

func TestBoltVaultStorage_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.db")
	ctx := context.Background()

	s, err := NewBoltVaultStorage(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SaveVault(ctx, "work.csv", sampleRecords()))
	require.NoError(t, s.Close())

	s, err = NewBoltVaultStorage(path, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.LoadVault(ctx, "work.csv")
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)
}
