// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) generatePassword(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.generatePassword")
		return
	}

	password, err := h.services.GeneratorService.GeneratePassword(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.generatePassword")
		return
	}

	utils.WriteJSON(w, models.GeneratePasswordResponse{Password: password}, http.StatusOK)
}

func (h *Handler) generatePassphrase(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePassphraseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.generatePassphrase")
		return
	}

	passphrase, err := h.services.GeneratorService.GeneratePassphrase(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.generatePassphrase")
		return
	}

	utils.WriteJSON(w, models.GeneratePassphraseResponse{Passphrase: passphrase}, http.StatusOK)
}
