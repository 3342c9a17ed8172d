// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
	// writeTimeoutSlack leaves room to write the response after a request
	// used its whole processing budget.
	writeTimeoutSlack = 5 * time.Second
)

type httpServer struct {
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	if cfg.RequestTimeout > 0 {
		srv.ReadTimeout = cfg.RequestTimeout
		srv.WriteTimeout = cfg.RequestTimeout + writeTimeoutSlack
	}

	return &httpServer{server: srv, logger: logger}
}

func (h *httpServer) RunServer() error {
	lis, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("http listen on %s: %w", h.server.Addr, err)
	}

	return h.serve(lis)
}

func (h *httpServer) serve(lis net.Listener) error {
	h.logger.Info().Str("address", lis.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}
