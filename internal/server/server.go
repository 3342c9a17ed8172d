// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// shutdownTimeout bounds the graceful stop of all transports.
const shutdownTimeout = 15 * time.Second

// Server owns every configured transport.
type Server struct {
	servers []Transport
	logger  *logger.Logger
}

// NewServer builds a transport for every handler that exists.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*Server, error) {
	logger.Info().Msg("creating new server...")
	s := &Server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.servers = append(s.servers, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.servers = append(s.servers, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// Run serves until a termination signal arrives or a transport fails.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *Server) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range s.servers {
		g.Go(srv.RunServer)
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range s.servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
