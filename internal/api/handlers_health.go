// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/digitaltwin/internal/models"
)

// Health reports liveness and the loaded registry.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status := "healthy"
	if h.registry.Len() == 0 {
		status = "degraded"
	}

	h.respondSuccess(w, r, models.HealthStatus{
		Status:   status,
		Version:  h.version,
		Personas: h.registry.Len(),
		BuildID:  h.registry.BuildID(),
		BuiltAt:  h.registry.BuiltAt(),
		Uptime:   time.Since(h.startTime).Seconds(),
	}, start)
}
