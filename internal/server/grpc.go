// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	myGRPC "github.com/MKhiriev/go-pass-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLogging))
	handler.Register(srv)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  srv,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", g.address, err)
	}

	return g.serve(lis)
}

func (g *grpcServer) serve(lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")

	if err := g.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING, then waits for in-flight calls. When ctx
// expires first the remaining connections are closed.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
