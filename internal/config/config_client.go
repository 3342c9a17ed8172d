// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of the passvault CLI.
type ClientConfig struct {
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the CLI configuration. The client has
// its own subcommand flags, so only dotenv, environment, config file and
// defaults are consulted.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFile().
		withDefaults()
	if b.err != nil {
		return nil, fmt.Errorf("error get client config: %w", b.err)
	}

	cfg, err := mergeConfigs(b.configs)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
