// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order, so wrapped validation errors are
// classified as 400 before anything they may also wrap.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, ErrInvalidJSON.Error()},
	{ErrInvalidGzip, http.StatusBadRequest, ErrInvalidGzip.Error()},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{models.ErrInvalidVaultName, http.StatusBadRequest, ""},
	{generator.ErrInvalidLength, http.StatusBadRequest, ""},
	{generator.ErrInvalidWordCount, http.StatusBadRequest, ""},

	{crypto.ErrAuthenticationFailure, http.StatusUnauthorized, crypto.ErrAuthenticationFailure.Error()},

	{crypto.ErrMalformedToken, http.StatusUnprocessableEntity, "vault contains a malformed token"},
	{crypto.ErrEncoding, http.StatusUnprocessableEntity, "vault contains invalid text"},
	{store.ErrMalformedVault, http.StatusUnprocessableEntity, store.ErrMalformedVault.Error()},

	{store.ErrVaultNotFound, http.StatusNotFound, store.ErrVaultNotFound.Error()},
	{errRouteNotFound, http.StatusNotFound, errRouteNotFound.Error()},

	{ErrTooManyRequests, http.StatusTooManyRequests, ErrTooManyRequests.Error()},
}

const internalErrorMessage = "internal server error"

// statusFromError returns the response status and the message shown to the
// client. An empty mapping message exposes err itself, which is only done
// for client errors.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.message == "" {
				return m.status, err.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

// writeError answers with the {success:false, error} body for err.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	if _, werr := utils.WriteJSON(w, models.ErrorResponse{Success: false, Error: message}, status); werr != nil {
		log.Err(werr).Str("func", fn).Msg("error writing error response")
	}
}
