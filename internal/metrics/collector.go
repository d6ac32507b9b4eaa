// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics records Prometheus metrics for remote API calls made by the
// idiotic client and for requests served by the gateway.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "idiotic"

// codeTransportError labels API requests that never received a response.
const codeTransportError = "error"

// Collector holds the metric vectors. Create one per registry.
type Collector struct {
	apiRequestsTotal   *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec

	gatewayRequestsTotal   *prometheus.CounterVec
	gatewayRequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewCollector registers the metric vectors on reg. reg is usually a
// *prometheus.Registry, which also serves as the gatherer for [Collector.Handler].
func NewCollector(reg *prometheus.Registry) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		apiRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Total number of requests sent to the remote API",
			},
			[]string{"endpoint", "code"},
		),
		apiRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "Remote API request duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"endpoint"},
		),
		gatewayRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests served by the gateway",
			},
			[]string{"route", "code"},
		),
		gatewayRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "http_request_duration_seconds",
				Help:      "Gateway request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		gatherer: reg,
	}
}

// ObserveAPIRequest records one remote API request. Its signature matches
// idiotic.Observer so it can be passed to idiotic.WithObserver directly.
func (c *Collector) ObserveAPIRequest(endpoint string, status int, elapsed time.Duration, _ error) {
	code := codeTransportError
	if status > 0 {
		code = strconv.Itoa(status)
	}

	c.apiRequestsTotal.WithLabelValues(endpoint, code).Inc()
	c.apiRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// RecordHTTPRequest records one request served by the gateway. route is the
// chi route pattern, not the raw path.
func (c *Collector) RecordHTTPRequest(route string, status int, elapsed time.Duration) {
	c.gatewayRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	c.gatewayRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
