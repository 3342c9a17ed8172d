// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestGeneratePassword_PassesOptions(t *testing.T) {
	var got models.GeneratePasswordRequest
	router := newTestHandler(t, nil, &mockGeneratorService{
		passwordFn: func(_ context.Context, req models.GeneratePasswordRequest) (string, error) {
			got = req
			return "Ab3$efgh", nil
		},
	}).Init()

	rec := doRequest(t, router, http.MethodPost, "/generate_password", `{"length":8,"use_special":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"password":"Ab3$efgh"}`, rec.Body.String())
	require.NotNil(t, got.Length)
	assert.Equal(t, 8, *got.Length)
	require.NotNil(t, got.UseSpecial)
	assert.False(t, *got.UseSpecial)
	assert.Nil(t, got.UseUpper)
}

func TestGeneratePassword_InvalidLength(t *testing.T) {
	router := newTestHandler(t, nil, &mockGeneratorService{
		passwordFn: func(context.Context, models.GeneratePasswordRequest) (string, error) {
			return "", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, generator.ErrInvalidLength)
		},
	}).Init()

	rec := doRequest(t, router, http.MethodPost, "/generate_password", `{"length":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, generator.ErrInvalidLength.Error())
}

func TestGeneratePassphrase(t *testing.T) {
	router := newTestHandler(t, nil, &mockGeneratorService{
		passphraseFn: func(_ context.Context, req models.GeneratePassphraseRequest) (string, error) {
			require.NotNil(t, req.Words)
			return fmt.Sprintf("%d words", *req.Words), nil
		},
	}).Init()

	rec := doRequest(t, router, http.MethodPost, "/generate_passphrase", `{"words":4}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"passphrase":"4 words"}`, rec.Body.String())
}

func TestGeneratePassphrase_RealService(t *testing.T) {
	router := newTestHandler(t, nil, service.NewGeneratorService(nil, logger.Nop())).Init()

	rec := doRequest(t, router, http.MethodPost, "/generate_passphrase", `{"words":33}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/generate_password", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.GeneratePasswordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, generator.DefaultPasswordLength)
}
