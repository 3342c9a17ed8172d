// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) savePasswords(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.savePasswords")
		return
	}

	name, err := h.services.VaultService.SaveVault(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.savePasswords")
		return
	}

	utils.WriteJSON(w, models.SaveResponse{Success: true, Filename: name}, http.StatusOK)
}

func (h *Handler) loadPasswords(w http.ResponseWriter, r *http.Request) {
	var req models.LoadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.loadPasswords")
		return
	}

	records, err := h.services.VaultService.LoadVault(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.loadPasswords")
		return
	}

	utils.WriteJSON(w, models.LoadResponse{Success: true, Passwords: records}, http.StatusOK)
}

// downloadCSV sends the stored vault file as an attachment. The content is
// buffered first so a failure can still produce a JSON error.
func (h *Handler) downloadCSV(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	var buf bytes.Buffer
	if err := h.services.VaultService.ExportVault(r.Context(), name, &buf); err != nil {
		writeError(w, r, err, "*Handler.downloadCSV")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.downloadCSV").Msg("error writing vault file")
	}
}
