// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

/*
Package ingest loads interaction events for persona construction.

Sources:
  - synthetic: seeded generator for demos and tests
  - csv, parquet: read through an in-memory DuckDB connection
  - jsonl: one JSON object per line

Every file source expects the fields user_id, category, format and
time_spent. Values are not validated here; persona.Factory.Build rejects
malformed events.

Usage:

	src, err := ingest.New(cfg.Ingest)
	if err != nil {
	    return err
	}
	events, err := ingest.Load(ctx, src, logging.Logger())
*/
package ingest
