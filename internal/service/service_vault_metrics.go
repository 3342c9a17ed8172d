// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	opSave   = "save"
	opLoad   = "load"
	opExport = "export"
)

// VaultMetricsService records Prometheus metrics around the wrapped
// [VaultService].
type VaultMetricsService struct {
	inner   VaultService
	metrics *metrics.Metrics
}

func NewVaultMetricsService(m *metrics.Metrics) VaultServiceWrapper {
	return &VaultMetricsService{metrics: m}
}

func (s *VaultMetricsService) SaveVault(ctx context.Context, req models.SaveRequest) (string, error) {
	start := time.Now()
	name, err := s.inner.SaveVault(ctx, req)
	s.observe(opSave, start, err)

	if err == nil {
		s.metrics.VaultRecords.WithLabelValues(opSave).Observe(float64(len(req.Passwords)))
		switch {
		case req.EncryptionPassword == "":
			s.metrics.PlaintextSaves.Inc()
		case IsWeakPassphrase(req.EncryptionPassword):
			s.metrics.WeakPassphrases.Inc()
		}
	}

	return name, err
}

func (s *VaultMetricsService) LoadVault(ctx context.Context, req models.LoadRequest) ([]models.Record, error) {
	start := time.Now()
	records, err := s.inner.LoadVault(ctx, req)
	s.observe(opLoad, start, err)

	if err == nil {
		s.metrics.VaultRecords.WithLabelValues(opLoad).Observe(float64(len(records)))
	}

	return records, err
}

func (s *VaultMetricsService) ExportVault(ctx context.Context, name string, w io.Writer) error {
	start := time.Now()
	err := s.inner.ExportVault(ctx, name, w)
	s.observe(opExport, start, err)

	return err
}

func (s *VaultMetricsService) Wrap(inner VaultService) VaultService {
	s.inner = inner
	return s
}

func (s *VaultMetricsService) observe(op string, start time.Time, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}

	s.metrics.VaultOperations.WithLabelValues(op, result).Inc()
	s.metrics.VaultOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
