// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package metrics

import (
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Persona Build Metrics
	PersonaBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persona_builds_total",
			Help: "Total number of persona registry builds",
		},
		[]string{"status"}, // "success", "error"
	)

	PersonaBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "persona_build_duration_seconds",
			Help:    "Duration of persona registry builds in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PersonaCohortSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "persona_cohort_size",
			Help: "Number of users in each persona's cohort",
		},
		[]string{"persona"},
	)

	// Ingest Metrics
	InteractionsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persona_interactions_ingested_total",
			Help: "Total number of interaction events loaded",
		},
		[]string{"source"}, // "synthetic", "csv", "parquet", "jsonl"
	)

	IngestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "persona_ingest_duration_seconds",
			Help:    "Duration of interaction event loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	IngestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persona_ingest_errors_total",
			Help: "Total number of failed interaction event loads",
		},
		[]string{"source"},
	)

	// Concept Evaluation Metrics
	ConceptEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concept_evaluations_total",
			Help: "Total number of concept verdicts by response",
		},
		[]string{"response"}, // "yes", "maybe", "no"
	)

	ConceptScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "concept_score",
			Help:    "Distribution of raw concept scores",
			Buckets: []float64{0, 20, 40, 60, 80, 100, 120, 140},
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordIngest records one event load from a source.
func RecordIngest(source string, events int, duration time.Duration, err error) {
	IngestDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		IngestErrors.WithLabelValues(source).Inc()
		return
	}
	InteractionsIngested.WithLabelValues(source).Add(float64(events))
}

// RecordEvaluation records one concept verdict.
func RecordEvaluation(response string, score float64) {
	ConceptEvaluationsTotal.WithLabelValues(response).Inc()
	ConceptScore.Observe(score)
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
