// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{"object", map[string]string{"password": "x"}, http.StatusOK, `{"password":"x"}`},
		{"error body", struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{false, "decryption failed"}, http.StatusUnauthorized, `{"success":false,"error":"decryption failed"}`},
		{"nil", nil, http.StatusOK, `null`},
		{"slice", []int{1, 2}, http.StatusCreated, `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]any{"ch": make(chan int)}, http.StatusOK)

	require.Error(t, err)
	var unsupported *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
