// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

/*
Package api serves a built persona registry over HTTP using the chi router.

# Endpoints

	GET  /api/v1/health                    status, persona count, build id
	GET  /api/v1/personas                  persona summaries in cohort order
	GET  /api/v1/personas/{id}             one persona summary
	POST /api/v1/personas/{id}/evaluate    Concept body, one verdict
	POST /api/v1/concepts/evaluate         Concept body, verdicts for every persona
	GET  /metrics                          Prometheus exposition

Every /api/v1 response uses the models.APIResponse envelope. Error codes map
from persona error kinds:

	persona.ErrValidation     400 VALIDATION_ERROR
	malformed body            400 INVALID_JSON
	unknown persona or route  404 NOT_FOUND
	persona.ErrConfiguration  422 CONFIGURATION_ERROR
	anything else             500 INTERNAL_ERROR

# Middleware

Global: request id, real IP, access log, panic recovery, CORS (go-chi/cors).
Under /api/v1: per-IP rate limiting (go-chi/httprate) and Prometheus metrics.

# Concurrency

The registry is read-only, so handlers share it without locking.

Usage:

	handler := api.NewHandler(registry, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Server)))
	srv := &http.Server{Addr: cfg.Server.Address(), Handler: router.SetupChi()}
*/
package api
