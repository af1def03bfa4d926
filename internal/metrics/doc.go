// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

/*
Package metrics provides Prometheus metrics for persona builds, event ingest,
concept evaluation and the HTTP API.

Metrics are registered with the default registry through promauto and exposed
at /metrics in serve mode:

	curl http://localhost:8080/metrics

# Available Metrics

Persona Metrics:
  - persona_builds_total: registry builds (counter), label status
  - persona_build_duration_seconds: build latency (histogram)
  - persona_cohort_size: users per persona (gauge), label persona

Ingest Metrics:
  - persona_interactions_ingested_total: events loaded (counter), label source
  - persona_ingest_duration_seconds: load latency (histogram), label source
  - persona_ingest_errors_total: failed loads (counter), label source

Concept Metrics:
  - concept_evaluations_total: verdicts (counter), label response
  - concept_score: raw score distribution (histogram)

HTTP Metrics:
  - http_requests_total: requests (counter), labels method, endpoint, status_code
  - http_request_duration_seconds: latency (histogram), labels method, endpoint
  - http_active_requests: in-flight requests (gauge)

# Usage

	start := time.Now()
	events, err := src.Load(ctx)
	metrics.RecordIngest(src.Name(), len(events), time.Since(start), err)

	metrics.RecordEvaluation(v.Response.String(), v.Score)

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
