// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockVaultService struct {
	saveFn   func(ctx context.Context, req models.SaveRequest) (string, error)
	loadFn   func(ctx context.Context, req models.LoadRequest) ([]models.Record, error)
	exportFn func(ctx context.Context, name string, w io.Writer) error
}

func (m *mockVaultService) SaveVault(ctx context.Context, req models.SaveRequest) (string, error) {
	return m.saveFn(ctx, req)
}

func (m *mockVaultService) LoadVault(ctx context.Context, req models.LoadRequest) ([]models.Record, error) {
	return m.loadFn(ctx, req)
}

func (m *mockVaultService) ExportVault(ctx context.Context, name string, w io.Writer) error {
	return m.exportFn(ctx, name, w)
}

type mockGeneratorService struct {
	passwordFn   func(ctx context.Context, req models.GeneratePasswordRequest) (string, error)
	passphraseFn func(ctx context.Context, req models.GeneratePassphraseRequest) (string, error)
}

func (m *mockGeneratorService) GeneratePassword(ctx context.Context, req models.GeneratePasswordRequest) (string, error) {
	return m.passwordFn(ctx, req)
}

func (m *mockGeneratorService) GeneratePassphrase(ctx context.Context, req models.GeneratePassphraseRequest) (string, error) {
	return m.passphraseFn(ctx, req)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testServerConfig() config.Server {
	return config.Server{HTTPAddress: "localhost:0", RequestTimeout: 5 * time.Second}
}

func newTestHandler(t *testing.T, vault service.VaultService, gen service.GeneratorService) *Handler {
	t.Helper()

	return NewHandler(&service.Services{
		VaultService:     vault,
		GeneratorService: gen,
		AppInfoService:   &mockAppInfoService{version: "test-version"},
	}, testServerConfig(), metrics.New(), logger.Nop())
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	assert.False(t, resp.Success)
	return resp
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, testServerConfig(), nil, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Nil(t, h.metrics)
	assert.Nil(t, h.limiter, "zero rate limit config disables limiting")
	assert.Equal(t, 5*time.Second, h.timeout)
}

func TestNewHandler_RateLimitEnabled(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimit = config.RateLimit{RPS: 1, Burst: 2}

	h := NewHandler(&service.Services{}, cfg, nil, logger.Nop())

	require.NotNil(t, h.limiter)
	assert.Equal(t, 2, h.limiter.burst)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_RegistersRoutes(t *testing.T) {
	h := newTestHandler(t,
		&mockVaultService{
			saveFn: func(context.Context, models.SaveRequest) (string, error) { return "passwords.csv", nil },
			loadFn: func(context.Context, models.LoadRequest) ([]models.Record, error) { return []models.Record{}, nil },
			exportFn: func(_ context.Context, _ string, w io.Writer) error {
				_, err := w.Write([]byte("website,username,password,notes\n"))
				return err
			},
		},
		&mockGeneratorService{
			passwordFn:   func(context.Context, models.GeneratePasswordRequest) (string, error) { return "pw", nil },
			passphraseFn: func(context.Context, models.GeneratePassphraseRequest) (string, error) { return "a-b", nil },
		},
	)
	router := h.Init()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/generate_password", "{}"},
		{http.MethodPost, "/generate_passphrase", "{}"},
		{http.MethodPost, "/save_passwords", `{"passwords":[]}`},
		{http.MethodPost, "/load_passwords", "{}"},
		{http.MethodGet, "/download_csv/passwords.csv", ""},
		{http.MethodGet, "/api/version/", ""},
		{http.MethodGet, "/metrics", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_UnknownRouteAndWrongMethod(t *testing.T) {
	router := newTestHandler(t, &mockVaultService{}, &mockGeneratorService{}).Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/save_passwords"},
		{http.MethodDelete, "/load_passwords"},
		{http.MethodPost, "/api/version/"},
		{http.MethodPost, "/download_csv/passwords.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "not found", decodeError(t, rec).Error)
		})
	}
}

func TestInit_WithoutMetrics(t *testing.T) {
	h := NewHandler(&service.Services{AppInfoService: &mockAppInfoService{}}, testServerConfig(), nil, logger.Nop())

	rec := doRequest(t, h.Init(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_RecoversFromPanic(t *testing.T) {
	router := newTestHandler(t, &mockVaultService{
		loadFn: func(context.Context, models.LoadRequest) ([]models.Record, error) { panic("boom") },
	}, nil).Init()

	rec := doRequest(t, router, http.MethodPost, "/load_passwords", "{}")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_CountsRequestsByRoutePattern(t *testing.T) {
	h := newTestHandler(t, &mockVaultService{
		exportFn: func(context.Context, string, io.Writer) error { return nil },
	}, nil)
	router := h.Init()

	doRequest(t, router, http.MethodGet, "/download_csv/a.csv", "")
	doRequest(t, router, http.MethodGet, "/download_csv/b.csv", "")

	assert.InDelta(t, 2, testutil.ToFloat64(h.metrics.HTTPRequests.WithLabelValues("/download_csv/{filename}", "200")), 0)
}
