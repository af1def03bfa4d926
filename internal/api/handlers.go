// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/digitaltwin/internal/logging"
	"github.com/tomtom215/digitaltwin/internal/persona"
)

// Handler serves requests against one persona registry.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, shared middleware
//   - handlers_helpers.go: response and decoding helpers
//   - handlers_health.go: health endpoint
//   - handlers_persona.go: persona and concept endpoints
type Handler struct {
	registry  *persona.Registry
	version   string
	startTime time.Time
}

// NewHandler creates a handler for registry. version is reported by the
// health endpoint.
func NewHandler(registry *persona.Registry, version string) *Handler {
	return &Handler{
		registry:  registry,
		version:   version,
		startTime: time.Now(),
	}
}

// withBuildID tags the request logging context with the registry build id.
func (h *Handler) withBuildID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.ContextWithBuildID(r.Context(), h.registry.BuildID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}
