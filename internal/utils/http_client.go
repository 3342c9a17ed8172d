// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultRetryCount   = 2
	defaultRetryWait    = 500 * time.Millisecond
	defaultRetryMaxWait = 3 * time.Second
)

// HTTPClient embeds *resty.Client so callers use the resty request API
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. Requests that end in 429
// or 503 are retried with backoff; a non-positive timeout leaves resty's
// default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil || resp == nil {
				return false
			}
			code := resp.StatusCode()
			return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
		})

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
