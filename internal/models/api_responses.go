// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package models

import (
	"time"

	"github.com/tomtom215/digitaltwin/internal/persona"
)

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Status is "success" with Data populated, or "error" with Error populated:
//
//	{
//	  "status": "success",
//	  "data": [{"persona_id": "persona_0", "verdict": {...}}],
//	  "metadata": {"timestamp": "2026-01-12T12:00:00Z", "query_time_ms": 1}
//	}
//
//	{
//	  "status": "error",
//	  "error": {"code": "NOT_FOUND", "message": "persona persona_9 not found"},
//	  "metadata": {"timestamp": "2026-01-12T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes when and how fast a response was produced.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	BuildID     string    `json:"build_id,omitempty"`
}

// APIError is the machine-readable error body.
//
// Codes in use: VALIDATION_ERROR, CONFIGURATION_ERROR, NOT_FOUND,
// INVALID_JSON, RATE_LIMIT_EXCEEDED, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status   string    `json:"status"`
	Version  string    `json:"version"`
	Personas int       `json:"personas"`
	BuildID  string    `json:"build_id"`
	BuiltAt  time.Time `json:"built_at"`
	Uptime   float64   `json:"uptime_seconds"`
}

// PersonaList is the body of GET /api/v1/personas.
type PersonaList struct {
	Count    int               `json:"count"`
	Personas []persona.Summary `json:"personas"`
}
