// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"
)

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(clientKey(r), time.Now()) {
			if h.metrics != nil {
				h.metrics.RateLimited.Inc()
			}
			w.Header().Set("Retry-After", "1")
			writeError(w, r, ErrTooManyRequests, "*Handler.withRateLimit")
			return
		}

		next.ServeHTTP(w, r)
	})
}
