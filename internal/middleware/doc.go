// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

/*
Package middleware provides chi-compatible HTTP middleware.

  - RequestID: X-Request-ID propagation into the logging context
  - AccessLog: per-request structured log line
  - PrometheusMetrics: request count, latency and in-flight gauge

Install them on a chi router in this order so the access log and metrics
see the request id:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
