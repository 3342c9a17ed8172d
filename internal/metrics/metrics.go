// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the Prometheus collectors of the pass-vault server.
// Collectors live in a private registry exposed on GET /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "passvault"

// Operation results used as the "result" label.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics groups every collector used by the server.
type Metrics struct {
	registry *prometheus.Registry

	// VaultOperations counts vault service calls by operation and result.
	VaultOperations *prometheus.CounterVec
	// VaultOperationDuration observes vault service latency by operation.
	VaultOperationDuration *prometheus.HistogramVec
	// VaultRecords observes how many records a save or load touched.
	VaultRecords *prometheus.HistogramVec
	// WeakPassphrases counts saves protected by a short passphrase.
	WeakPassphrases prometheus.Counter
	// PlaintextSaves counts saves without any passphrase.
	PlaintextSaves prometheus.Counter
	// GeneratedSecrets counts generated passwords and passphrases by kind.
	GeneratedSecrets *prometheus.CounterVec
	// HTTPRequests counts served requests by route pattern and status code.
	HTTPRequests *prometheus.CounterVec
	// RateLimited counts requests rejected with 429.
	RateLimited prometheus.Counter
}

// New builds the collectors and registers them, together with the Go and
// process collectors, in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		VaultOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vault",
			Name:      "operations_total",
			Help:      "Vault operations by operation and result.",
		}, []string{"operation", "result"}),
		VaultOperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "vault",
			Name:      "operation_duration_seconds",
			Help:      "Vault operation latency. Key derivation dominates encrypted vaults.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),
		VaultRecords: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "vault",
			Name:      "records",
			Help:      "Number of records per saved or loaded vault.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"operation"}),
		WeakPassphrases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vault",
			Name:      "weak_passphrases_total",
			Help:      "Vaults saved with a passphrase shorter than the recommended minimum.",
		}),
		PlaintextSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vault",
			Name:      "plaintext_saves_total",
			Help:      "Vaults saved without encryption.",
		}),
		GeneratedSecrets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "secrets_total",
			Help:      "Generated secrets by kind.",
		}, []string{"kind"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.VaultOperations,
		m.VaultOperationDuration,
		m.VaultRecords,
		m.WeakPassphrases,
		m.PlaintextSaves,
		m.GeneratedSecrets,
		m.HTTPRequests,
		m.RateLimited,
	)

	return m
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
