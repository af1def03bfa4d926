// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/digitaltwin/internal/logging"
	"github.com/tomtom215/digitaltwin/internal/metrics"
	"github.com/tomtom215/digitaltwin/internal/models"
	"github.com/tomtom215/digitaltwin/internal/persona"
)

// ListPersonas returns every persona summary in cohort order.
func (h *Handler) ListPersonas(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	all := h.registry.All()
	list := models.PersonaList{
		Count:    len(all),
		Personas: make([]persona.Summary, 0, len(all)),
	}
	for _, p := range all {
		list.Personas = append(list.Personas, p.Summary())
	}
	h.respondSuccess(w, r, list, start)
}

// GetPersona returns one persona summary.
func (h *Handler) GetPersona(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.respondSuccess(w, r, p.Summary(), start)
}

// EvaluatePersona scores the posted concept against one persona.
func (h *Handler) EvaluatePersona(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	concept, err := decodeConcept(w, r)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	verdict, err := persona.Evaluate(p, concept)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	metrics.RecordEvaluation(verdict.Response.String(), verdict.Score)

	logging.Ctx(r.Context()).Debug().
		Str("persona", p.ID()).
		Str("response", verdict.Response.String()).
		Float64("score", verdict.Score).
		Msg("concept evaluated")

	h.respondSuccess(w, r, persona.Evaluation{PersonaID: p.ID(), Verdict: verdict}, start)
}

// EvaluateConcept scores the posted concept against every persona.
func (h *Handler) EvaluateConcept(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	concept, err := decodeConcept(w, r)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	results, err := persona.EvaluateAll(h.registry, concept)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	for _, res := range results {
		metrics.RecordEvaluation(res.Verdict.Response.String(), res.Verdict.Score)
	}

	logging.Ctx(r.Context()).Debug().
		Int("personas", len(results)).
		Msg("concept evaluated against registry")

	h.respondSuccess(w, r, results, start)
}

// lookup resolves the {id} URL parameter, writing a 404 when unknown.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*persona.Persona, bool) {
	id := chi.URLParam(r, "id")
	p, ok := h.registry.Get(id)
	if !ok {
		respondError(w, r, http.StatusNotFound, "NOT_FOUND", "Persona not found", nil)
		return nil, false
	}
	return p, true
}
