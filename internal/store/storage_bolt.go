// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultsBucket holds one nested bucket per vault. Inside it every record is
// a JSON value keyed by its big-endian position.
var vaultsBucket = []byte("vaults")

type boltVaultStorage struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewBoltVaultStorage opens or creates the bbolt file at path.
func NewBoltVaultStorage(path string, log *logger.Logger) (VaultStorage, error) {
	db, err := bolt.Open(path, vaultFileMode, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltVaultStorage").Str("path", path).Msg("failed to open bolt database")
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(vaultsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create vaults bucket: %w", err)
	}

	log.Debug().Str("func", "NewBoltVaultStorage").Str("path", path).Msg("bolt vault storage is ready")
	return &boltVaultStorage{db: db, logger: log}, nil
}

func (s *boltVaultStorage) SaveVault(ctx context.Context, name string, records []models.Record) error {
	if err := models.CheckVaultName(name); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(vaultsBucket)
		key := []byte(name)

		if root.Bucket(key) != nil {
			if err := root.DeleteBucket(key); err != nil {
				return err
			}
		}

		vault, err := root.CreateBucket(key)
		if err != nil {
			return err
		}

		for i, r := range records {
			value, err := json.Marshal(r)
			if err != nil {
				return err
			}
			if err = vault.Put(positionKey(i), value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "boltVaultStorage.SaveVault").Str("vault", name).Msg("failed to save vault")
		return fmt.Errorf("failed to save vault: %w", err)
	}

	return nil
}

func (s *boltVaultStorage) LoadVault(ctx context.Context, name string) ([]models.Record, error) {
	if err := models.CheckVaultName(name); err != nil {
		return nil, err
	}

	var records []models.Record
	err := s.db.View(func(tx *bolt.Tx) error {
		vault := tx.Bucket(vaultsBucket).Bucket([]byte(name))
		if vault == nil {
			return ErrVaultNotFound
		}

		records = make([]models.Record, 0, vault.Stats().KeyN)
		return vault.ForEach(func(_, v []byte) error {
			var r models.Record
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("%w: %w", ErrMalformedVault, err)
			}
			records = append(records, r)
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, ErrVaultNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "boltVaultStorage.LoadVault").Str("vault", name).Msg("failed to load vault")
		}
		return nil, err
	}

	return records, nil
}

func (s *boltVaultStorage) Close() error {
	return s.db.Close()
}

func positionKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return key
}
