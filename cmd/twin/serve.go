// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/digitaltwin/internal/api"
	"github.com/tomtom215/digitaltwin/internal/config"
	"github.com/tomtom215/digitaltwin/internal/logging"
	"github.com/tomtom215/digitaltwin/internal/persona"
	"github.com/tomtom215/digitaltwin/internal/supervisor"
	"github.com/tomtom215/digitaltwin/internal/supervisor/services"
)

// newHTTPServer builds the API server for registry.
func newHTTPServer(cfg *config.Config, registry *persona.Registry) *http.Server {
	handler := api.NewHandler(registry, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Server)))

	return &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}

// serve runs the HTTP API under the supervisor tree until ctx is canceled.
func serve(ctx context.Context, cfg *config.Config, registry *persona.Registry) error {
	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(newHTTPServer(cfg, registry), cfg.Server.ShutdownTimeout))

	logging.Info().
		Str("addr", cfg.Server.Address()).
		Str("build_id", registry.BuildID()).
		Int("personas", registry.Len()).
		Msg("Serving persona API")

	err := tree.Serve(ctx)
	if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		logging.Warn().Int("unstopped", len(report)).Msg("Services did not stop within timeout")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Info().Msg("Shutdown complete")
	return nil
}
