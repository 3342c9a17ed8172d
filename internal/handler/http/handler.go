// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// maxBodyBytes bounds a decoded JSON request body.
const maxBodyBytes = 8 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	limiter  *rateLimiter
	traceIDs *utils.UUIDGenerator
	timeout  time.Duration

	logger *logger.Logger
}

// NewHandler builds the REST handler. m may be nil, in which case /metrics is
// not served and nothing is counted.
func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		metrics:  m,
		traceIDs: utils.NewUUIDGenerator(),
		timeout:  cfg.RequestTimeout,
		logger:   logger,
	}
	if cfg.RateLimit.Enabled() {
		h.limiter = newRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, defaultLimiterIdleTTL)
	}

	logger.Info().Msg("http handler created")
	return h
}
