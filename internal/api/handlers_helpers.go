// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/digitaltwin/internal/logging"
	"github.com/tomtom215/digitaltwin/internal/models"
	"github.com/tomtom215/digitaltwin/internal/persona"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// errInvalidJSON marks request bodies that could not be decoded.
var errInvalidJSON = errors.New("invalid JSON body")

// sanitizeLogValue replaces control characters so client input cannot forge
// log entries.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// respondJSON writes response with status.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope.
func (h *Handler) respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, start time.Time) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			BuildID:     h.registry.BuildID(),
		},
	})
}

// respondError writes an error envelope. err, when set, is logged but not
// returned to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Warn().
			Str("code", code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, r, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondDomainError maps persona error kinds onto HTTP statuses.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *persona.ValidationError
	switch {
	case errors.As(err, &verr):
		apiErr := verr.APIError()
		respondJSON(w, r, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error: &models.APIError{
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			},
		})
	case errors.Is(err, errInvalidJSON):
		respondError(w, r, http.StatusBadRequest, "INVALID_JSON", err.Error(), nil)
	case errors.Is(err, persona.ErrValidation):
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, persona.ErrConfiguration):
		respondError(w, r, http.StatusUnprocessableEntity, "CONFIGURATION_ERROR", err.Error(), nil)
	default:
		respondError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err)
	}
}

// decodeConcept reads a Concept body, rejecting unknown fields and trailing
// data.
func decodeConcept(w http.ResponseWriter, r *http.Request) (persona.Concept, error) {
	var c persona.Concept

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return c, fmt.Errorf("%w: empty body", errInvalidJSON)
		}
		return c, fmt.Errorf("%w: %s", errInvalidJSON, err.Error())
	}
	if dec.More() {
		return c, fmt.Errorf("%w: unexpected data after concept", errInvalidJSON)
	}
	return c, nil
}
