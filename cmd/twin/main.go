// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

// Package main is the entry point for the Digital Twin persona service.
//
// Startup order:
//
//  1. Configuration: defaults, optional YAML file and environment (Koanf v2)
//  2. Logging: zerolog to stderr
//  3. Ingest: load interaction events from the configured source
//  4. Personas: cluster users into cohorts and build the registry
//  5. Mode: print demo evaluations, or serve the HTTP API under suture
//
// # Modes
//
// demo (default) evaluates CONCEPT_* against every persona and prints:
//
//	persona_0: YES (score: 75.00)
//	Reason: Aligns with 18-24 age preferences Strong alignment with past engagement patterns
//
// serve exposes /api/v1 and /metrics until SIGINT or SIGTERM.
//
// # Example Usage
//
//	./twin
//	APP_MODE=serve HTTP_PORT=9000 ./twin
//	INGEST_SOURCE=parquet INGEST_PATH=/data/events.parquet PERSONA_COHORTS=4 ./twin
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/digitaltwin/internal/config"
	"github.com/tomtom215/digitaltwin/internal/ingest"
	"github.com/tomtom215/digitaltwin/internal/logging"
	"github.com/tomtom215/digitaltwin/internal/metrics"
	"github.com/tomtom215/digitaltwin/internal/persona"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout); err != nil {
		logging.Error().Err(err).Msg("digitaltwin exited with error")
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}
}

// run loads configuration and dispatches on the configured mode. Demo output
// goes to out.
func run(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	return runWithConfig(ctx, cfg, out)
}

func runWithConfig(ctx context.Context, cfg *config.Config, out io.Writer) error {
	logging.Init(cfg.LoggingSettings(os.Stderr))
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("config", cfg.String()).
		Msg("Starting Digital Twin")

	registry, err := buildRegistry(ctx, cfg)
	if err != nil {
		return err
	}

	switch cfg.App.Mode {
	case config.ModeServe:
		return serve(ctx, cfg, registry)
	default:
		return runDemo(out, registry, cfg.DemoConcept())
	}
}

// buildRegistry loads events from the configured source and builds personas.
func buildRegistry(ctx context.Context, cfg *config.Config) (*persona.Registry, error) {
	src, err := ingest.New(cfg.Ingest)
	if err != nil {
		return nil, err
	}
	events, err := ingest.Load(ctx, src, logging.Logger())
	if err != nil {
		return nil, err
	}

	factory, err := persona.NewFactory(cfg.PersonaSettings(), logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("persona settings: %w", err)
	}
	registry, err := factory.Build(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("build personas: %w", err)
	}
	return registry, nil
}
