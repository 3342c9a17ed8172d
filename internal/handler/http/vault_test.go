// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// POST /save_passwords
// ─────────────────────────────────────────────

func TestSavePasswords_Success(t *testing.T) {
	var got models.SaveRequest
	router := newTestHandler(t, &mockVaultService{
		saveFn: func(_ context.Context, req models.SaveRequest) (string, error) {
			got = req
			return "work.csv", nil
		},
	}, nil).Init()

	body := `{"passwords":[{"website":"a.com","username":"u","password":"p","notes":""}],` +
		`"filename":"work.csv","encryption_password":"secret passphrase"}`
	rec := doRequest(t, router, http.MethodPost, "/save_passwords", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"filename":"work.csv"}`, rec.Body.String())

	require.Len(t, got.Passwords, 1)
	assert.Equal(t, "a.com", *got.Passwords[0].Website)
	assert.Equal(t, "", *got.Passwords[0].Notes)
	assert.Equal(t, "secret passphrase", got.EncryptionPassword)
}

func TestSavePasswords_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid json",
			body:       `{"passwords": [`,
			wantStatus: http.StatusBadRequest,
			wantError:  ErrInvalidJSON.Error(),
		},
		{
			name:       "wrong json type",
			body:       `{"passwords": "nope"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  ErrInvalidJSON.Error(),
		},
		{
			name:       "validation",
			body:       `{}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoRecords),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided: " + validators.ErrNoRecords.Error(),
		},
		{
			name:       "storage failure is hidden",
			body:       `{"passwords":[]}`,
			serviceErr: fmt.Errorf("save vault: %w", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantError:  internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(t, &mockVaultService{
				saveFn: func(context.Context, models.SaveRequest) (string, error) {
					if tt.serviceErr == nil {
						t.Fatal("service must not be called")
					}
					return "", tt.serviceErr
				},
			}, nil).Init()

			rec := doRequest(t, router, http.MethodPost, "/save_passwords", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}

// ─────────────────────────────────────────────
// POST /load_passwords
// ─────────────────────────────────────────────

func TestLoadPasswords_Success(t *testing.T) {
	records := []models.Record{
		{Website: "a.com", Username: "u", Password: "p", Notes: "n"},
		{Website: "b.com", Username: "v", Password: "q"},
	}
	router := newTestHandler(t, &mockVaultService{
		loadFn: func(_ context.Context, req models.LoadRequest) ([]models.Record, error) {
			assert.Equal(t, "pw", req.DecryptionPassword)
			assert.Equal(t, models.DefaultVaultName, req.VaultName())
			return records, nil
		},
	}, nil).Init()

	rec := doRequest(t, router, http.MethodPost, "/load_passwords", `{"decryption_password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, records, resp.Passwords)
}

func TestLoadPasswords_EmptyVaultIsEmptyArray(t *testing.T) {
	router := newTestHandler(t, &mockVaultService{
		loadFn: func(context.Context, models.LoadRequest) ([]models.Record, error) { return []models.Record{}, nil },
	}, nil).Init()

	rec := doRequest(t, router, http.MethodPost, "/load_passwords", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"passwords":[]}`, rec.Body.String())
}

func TestLoadPasswords_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"wrong passphrase", fmt.Errorf("decrypt vault: record 0: decrypt password: %w", crypto.ErrAuthenticationFailure), http.StatusUnauthorized, "decryption failed"},
		{"malformed token", fmt.Errorf("decrypt vault: %w", crypto.ErrMalformedToken), http.StatusUnprocessableEntity, "vault contains a malformed token"},
		{"bad utf-8", crypto.ErrEncoding, http.StatusUnprocessableEntity, "vault contains invalid text"},
		{"malformed vault", fmt.Errorf("load vault: %w", store.ErrMalformedVault), http.StatusUnprocessableEntity, store.ErrMalformedVault.Error()},
		{"bad name", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, models.ErrInvalidVaultName), http.StatusBadRequest, "invalid data provided: invalid vault name"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, internalErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(t, &mockVaultService{
				loadFn: func(context.Context, models.LoadRequest) ([]models.Record, error) { return nil, tt.err },
			}, nil).Init()

			rec := doRequest(t, router, http.MethodPost, "/load_passwords", `{"decryption_password":"x"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.NotContains(t, rec.Body.String(), "passwords")
		})
	}
}

// ─────────────────────────────────────────────
// GET /download_csv/{filename}
// ─────────────────────────────────────────────

func TestDownloadCSV_Success(t *testing.T) {
	const content = "website,username,password,notes\na.com,u,p,\n"
	router := newTestHandler(t, &mockVaultService{
		exportFn: func(_ context.Context, name string, w io.Writer) error {
			assert.Equal(t, "work.csv", name)
			_, err := io.WriteString(w, content)
			return err
		},
	}, nil).Init()

	rec := doRequest(t, router, http.MethodGet, "/download_csv/work.csv", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, content, rec.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=work.csv", rec.Header().Get("Content-Disposition"))
}

func TestDownloadCSV_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("export vault: %w", store.ErrVaultNotFound), http.StatusNotFound},
		{"invalid name", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, models.ErrInvalidVaultName), http.StatusBadRequest},
		{"malformed", store.ErrMalformedVault, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(t, &mockVaultService{
				exportFn: func(_ context.Context, _ string, w io.Writer) error {
					_, _ = io.WriteString(w, "partial")
					return tt.err
				},
			}, nil).Init()

			rec := doRequest(t, router, http.MethodGet, "/download_csv/x.csv", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, strings.Contains(rec.Body.String(), "partial"))
			assert.Empty(t, rec.Header().Get("Content-Disposition"))
			decodeError(t, rec)
		})
	}
}
