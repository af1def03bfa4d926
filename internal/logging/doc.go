// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

/*
Package logging provides centralized zerolog-based logging.

# Quick Start

	logging.Init(logging.Config{
	    Level:  "info",
	    Format: "json",
	})

	logging.Info().Int("personas", reg.Len()).Msg("registry ready")
	logging.Error().Err(err).Msg("ingest failed")

Components take a zerolog.Logger by value and derive their own child with a
component field:

	logger := logging.WithComponent("api")

# Context

HTTP middleware stores the request ID in the request context. Ctx returns a
logger carrying request_id and build_id when present:

	logging.Ctx(r.Context()).Info().Msg("request completed")

# slog Bridge

SlogHandler adapts zerolog to log/slog for libraries that only accept an
*slog.Logger, such as the suture supervisor event hook:

	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger("supervisor")}

# Best Practices

Always terminate log chains with .Msg() or .Send(), and prefer typed fields
over Msgf.
*/
package logging
