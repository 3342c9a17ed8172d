// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.timeout > 0 {
		router.Use(middleware.Timeout(h.timeout))
	}

	router.Post("/generate_password", h.generatePassword)
	router.Post("/generate_passphrase", h.generatePassphrase)

	// vault access is limited per client
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/save_passwords", h.savePasswords)
		r.Post("/load_passwords", h.loadPasswords)
		r.Get("/download_csv/{filename}", h.downloadCSV)
	})

	router.Get("/api/version/", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errRouteNotFound, "NotFound")
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
