// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses server flags from args.
//
// Flags:
//
//	-a                  HTTP address in format [host]:port
//	-grpc-address       gRPC address in format [host]:port
//	-request-timeout    request timeout (e.g. "30s")
//	-driver             storage driver: csv, sqlite, postgres, bolt
//	-f, -vault-dir      directory for CSV vaults
//	-d                  database DSN
//	-bolt-path          bbolt file
//	-rate-limit-rps     requests per second per client, negative disables
//	-rate-limit-burst   token bucket size
//	-c, -config         JSON or YAML config file
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		httpAddress, grpcAddress NetAddress
		requestTimeout           time.Duration
		driver                   string
		vaultDir                 string
		dsn                      string
		boltPath                 string
		rps                      float64
		burst                    int
		configPath               string
	)

	fs := flag.NewFlagSet("pass-vault-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddress, "a", "HTTP address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.StringVar(&driver, "driver", "", "Storage driver: csv, sqlite, postgres, bolt")
	fs.StringVar(&vaultDir, "f", "", "CSV vault directory")
	fs.StringVar(&vaultDir, "vault-dir", "", "CSV vault directory (alias)")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&boltPath, "bolt-path", "", "bbolt database file")
	fs.Float64Var(&rps, "rate-limit-rps", 0, "Requests per second per client")
	fs.IntVar(&burst, "rate-limit-burst", 0, "Rate limit burst")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Driver: driver,
			Files:  Files{VaultDir: vaultDir},
			DB:     DB{DSN: dsn},
			Bolt:   Bolt{Path: boltPath},
		},
		Server: Server{
			HTTPAddress:    httpAddress.String(),
			GRPCAddress:    grpcAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit: RateLimit{
				RPS:   rps,
				Burst: burst,
			},
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when the address is unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". An empty host means all interfaces; otherwise the
// host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
