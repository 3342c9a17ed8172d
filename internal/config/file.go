// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedConfigFormat is returned for config files that are neither
// JSON nor YAML.
var ErrUnsupportedConfigFormat = errors.New("unsupported config file format")

type fileConfig struct {
	App struct {
		Version string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		Driver string `json:"driver" yaml:"driver"`
		Files  struct {
			VaultDir string `json:"vault_dir" yaml:"vault_dir"`
		} `json:"files" yaml:"files"`
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Bolt struct {
			Path string `json:"path" yaml:"path"`
		} `json:"bolt" yaml:"bolt"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimit      struct {
			RPS   float64 `json:"rps" yaml:"rps"`
			Burst int     `json:"burst" yaml:"burst"`
		} `json:"rate_limit" yaml:"rate_limit"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: fc.App.Version},
		Storage: Storage{
			Driver: fc.Storage.Driver,
			Files:  Files{VaultDir: fc.Storage.Files.VaultDir},
			DB:     DB{DSN: fc.Storage.DB.DSN},
			Bolt:   Bolt{Path: fc.Storage.Bolt.Path},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			RateLimit: RateLimit{
				RPS:   fc.Server.RateLimit.RPS,
				Burst: fc.Server.RateLimit.Burst,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that unmarshals from strings
// like "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
