// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the gRPC side of the server: the standard
// grpc.health.v1 service reporting vault readiness and server reflection.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// VaultServiceName is the health service name reported for the vault API.
const VaultServiceName = "passvault.Vault"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose health status starts as SERVING for
// both the server as a whole and [VaultServiceName].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(VaultServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Shutdown flips every service to NOT_SERVING so watchers drain before the
// listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging logs every unary call with its status code and duration.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
