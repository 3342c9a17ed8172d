// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a REST [ServerAdapter] for cfg.HTTPAddress.
// An address without a scheme is treated as http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, err
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: address must include a host", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) GeneratePassword(ctx context.Context, req models.GeneratePasswordRequest) (string, error) {
	var out models.GeneratePasswordResponse
	if err := h.postJSON(ctx, "/generate_password", req, &out); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	return out.Password, nil
}

func (h *httpServerAdapter) GeneratePassphrase(ctx context.Context, req models.GeneratePassphraseRequest) (string, error) {
	var out models.GeneratePassphraseResponse
	if err := h.postJSON(ctx, "/generate_passphrase", req, &out); err != nil {
		return "", fmt.Errorf("generate passphrase: %w", err)
	}
	return out.Passphrase, nil
}

func (h *httpServerAdapter) SaveVault(ctx context.Context, req models.SaveRequest) (string, error) {
	var out models.SaveResponse
	if err := h.postJSON(ctx, "/save_passwords", req, &out); err != nil {
		return "", fmt.Errorf("save vault: %w", err)
	}
	return out.Filename, nil
}

func (h *httpServerAdapter) LoadVault(ctx context.Context, req models.LoadRequest) ([]models.Record, error) {
	var out models.LoadResponse
	if err := h.postJSON(ctx, "/load_passwords", req, &out); err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}
	if out.Passwords == nil {
		out.Passwords = []models.Record{}
	}
	return out.Passwords, nil
}

func (h *httpServerAdapter) DownloadVault(ctx context.Context, name string, w io.Writer) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("filename", name).
		Get("/download_csv/{filename}")
	if err != nil {
		return fmt.Errorf("download vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("download vault: %w", err)
	}

	if _, err = w.Write(resp.Body()); err != nil {
		return fmt.Errorf("download vault write: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("version: %w", err)
	}
	return strings.TrimSpace(resp.String()), nil
}

// postJSON sends body as JSON and decodes a 2xx response into out.
func (h *httpServerAdapter) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(out).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.postJSON").Str("path", path).Msg("request failed")
		return fmt.Errorf("request %s: %w", path, err)
	}

	return mapHTTPError(resp)
}
