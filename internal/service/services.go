// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	VaultService     VaultService
	GeneratorService GeneratorService
	AppInfoService   AppInfoService
}

// NewServices wires the server services. The vault service is decorated as
// metrics -> validation -> core, so rejected requests are counted too.
func NewServices(storage store.VaultStorage, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	var vault VaultService = NewVaultService(storage, crypto.NewDefaultRecordCipher(), logger)
	vault = NewVaultValidationService().Wrap(vault)
	if m != nil {
		vault = NewVaultMetricsService(m).Wrap(vault)
	}

	return &Services{
		VaultService:     vault,
		GeneratorService: NewGeneratorService(m, logger),
		AppInfoService:   appInfo,
	}, nil
}
