// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	kindPassword   = "password"
	kindPassphrase = "passphrase"
)

type generatorService struct {
	generator *generator.Generator
	validator validators.Validator
	metrics   *metrics.Metrics

	logger *logger.Logger
}

// NewGeneratorService returns a [GeneratorService]. m may be nil.
func NewGeneratorService(m *metrics.Metrics, logger *logger.Logger) GeneratorService {
	return &generatorService{
		generator: generator.New(),
		validator: validators.NewGeneratorValidator(),
		metrics:   m,
		logger:    logger,
	}
}

func (s *generatorService) GeneratePassword(ctx context.Context, req models.GeneratePasswordRequest) (string, error) {
	opts := PasswordOptionsFromRequest(req)
	if err := s.validator.Validate(ctx, opts); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	password, err := s.generator.Password(opts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "generatorService.GeneratePassword").Msg("password generation failed")
		return "", fmt.Errorf("generate password: %w", err)
	}

	s.count(kindPassword)
	return password, nil
}

func (s *generatorService) GeneratePassphrase(ctx context.Context, req models.GeneratePassphraseRequest) (string, error) {
	opts := PassphraseOptionsFromRequest(req)
	if err := s.validator.Validate(ctx, opts); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passphrase, err := s.generator.Passphrase(opts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "generatorService.GeneratePassphrase").Msg("passphrase generation failed")
		return "", fmt.Errorf("generate passphrase: %w", err)
	}

	s.count(kindPassphrase)
	return passphrase, nil
}

func (s *generatorService) count(kind string) {
	if s.metrics != nil {
		s.metrics.GeneratedSecrets.WithLabelValues(kind).Inc()
	}
}

// PasswordOptionsFromRequest fills the unset request fields with defaults.
func PasswordOptionsFromRequest(req models.GeneratePasswordRequest) models.PasswordOptions {
	opts := generator.DefaultPasswordOptions()
	if req.Length != nil {
		opts.Length = *req.Length
	}
	if req.UseUpper != nil {
		opts.UseUpper = *req.UseUpper
	}
	if req.UseDigits != nil {
		opts.UseDigits = *req.UseDigits
	}
	if req.UseSpecial != nil {
		opts.UseSpecial = *req.UseSpecial
	}
	return opts
}

// PassphraseOptionsFromRequest fills the unset request fields with defaults.
func PassphraseOptionsFromRequest(req models.GeneratePassphraseRequest) models.PassphraseOptions {
	opts := generator.DefaultPassphraseOptions()
	if req.Words != nil {
		opts.Words = *req.Words
	}
	if req.Separator != nil {
		opts.Separator = *req.Separator
	}
	return opts
}
