// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

/*
Package config loads application configuration with Koanf v2.

# Configuration Sources

Sources are layered, later ones overriding earlier ones:
  - Built-in defaults
  - Optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/digitaltwin/config.yaml, /etc/digitaltwin/config.yml
  - Environment variables

# Environment Variables

Application:
  - APP_MODE: demo or serve (default: demo)
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Personas:
  - PERSONA_COHORTS: number of personas (default: 5)
  - PERSONA_SEED: clustering seed (default: 42)
  - PERSONA_MAX_ITERATIONS, PERSONA_N_INIT, PERSONA_TOLERANCE
  - PERSONA_AGE_GROUPS: comma-separated labels, one per cohort

Ingest:
  - INGEST_SOURCE: synthetic, csv, parquet or jsonl (default: synthetic)
  - INGEST_PATH: input file for csv, parquet and jsonl
  - INGEST_SYNTHETIC_USERS, INGEST_SYNTHETIC_EVENTS_PER_USER,
    INGEST_SYNTHETIC_SEED, INGEST_SYNTHETIC_SCALE,
    INGEST_SYNTHETIC_CATEGORIES, INGEST_SYNTHETIC_FORMATS

HTTP Server (serve mode):
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - CORS_ORIGINS: comma-separated
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Demo Concept (demo mode):
  - CONCEPT_CATEGORIES, CONCEPT_FORMAT, CONCEPT_TARGET_AGE, CONCEPT_DESCRIPTION

# Example

	app:
	  mode: serve
	persona:
	  cohorts: 4
	  age_groups: [18-24, 25-34, 35-44, 45+]
	ingest:
	  source: parquet
	  path: /data/interactions.parquet
*/
package config
