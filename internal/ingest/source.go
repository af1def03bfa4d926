// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/digitaltwin/internal/config"
	"github.com/tomtom215/digitaltwin/internal/metrics"
	"github.com/tomtom215/digitaltwin/internal/persona"
)

// Source produces interaction events.
type Source interface {
	// Name is the source label used in logs and metrics.
	Name() string

	// Load returns every event the source holds, in source order.
	Load(ctx context.Context) ([]persona.InteractionEvent, error)
}

// New returns the source selected by cfg.Source.
func New(cfg config.IngestConfig) (Source, error) {
	switch cfg.Source {
	case config.SourceSynthetic:
		return NewSynthetic(SyntheticOptions{
			Users:         cfg.Synthetic.Users,
			EventsPerUser: cfg.Synthetic.EventsPerUser,
			Seed:          cfg.Synthetic.Seed,
			Scale:         cfg.Synthetic.Scale,
			Categories:    cfg.Synthetic.Categories,
			Formats:       cfg.Synthetic.Formats,
		}), nil
	case config.SourceCSV:
		return NewCSV(cfg.Path), nil
	case config.SourceParquet:
		return NewParquet(cfg.Path), nil
	case config.SourceJSONL:
		return NewJSONLines(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown ingest source %q", cfg.Source)
	}
}

// Load runs src.Load, records ingest metrics and logs the outcome.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(ctx context.Context, src Source, logger zerolog.Logger) ([]persona.InteractionEvent, error) {
	logger = logger.With().Str("component", "ingest").Str("source", src.Name()).Logger()

	start := time.Now()
	events, err := src.Load(ctx)
	elapsed := time.Since(start)
	metrics.RecordIngest(src.Name(), len(events), elapsed, err)

	if err != nil {
		logger.Error().Err(err).Dur("duration", elapsed).Msg("failed to load interactions")
		return nil, fmt.Errorf("load %s interactions: %w", src.Name(), err)
	}

	logger.Info().
		Int("events", len(events)).
		Dur("duration", elapsed).
		Msg("interactions loaded")
	return events, nil
}
