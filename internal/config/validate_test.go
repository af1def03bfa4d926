// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/digitaltwin/internal/persona"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"unknown mode", func(c *Config) { c.App.Mode = "batch" }, "APP_MODE"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"zero cohorts", func(c *Config) { c.Persona.Cohorts = 0 }, "persona settings"},
		{"too few age groups", func(c *Config) { c.Persona.AgeGroups = []string{"a"} }, "persona settings"},
		{"unknown source", func(c *Config) { c.Ingest.Source = "kafka" }, "INGEST_SOURCE"},
		{"csv without path", func(c *Config) { c.Ingest.Source = SourceCSV }, "INGEST_PATH"},
		{"csv with path", func(c *Config) { c.Ingest.Source = SourceCSV; c.Ingest.Path = "events.csv" }, ""},
		{"no synthetic users", func(c *Config) { c.Ingest.Synthetic.Users = 0 }, "INGEST_SYNTHETIC_USERS"},
		{"no synthetic events", func(c *Config) { c.Ingest.Synthetic.EventsPerUser = 0 }, "INGEST_SYNTHETIC_EVENTS_PER_USER"},
		{"non-positive scale", func(c *Config) { c.Ingest.Synthetic.Scale = 0 }, "INGEST_SYNTHETIC_SCALE"},
		{"no synthetic formats", func(c *Config) { c.Ingest.Synthetic.Formats = nil }, "INGEST_SYNTHETIC_FORMATS"},
		{"demo concept without format", func(c *Config) { c.Concept.Format = "" }, "concept settings"},
		{"serve ignores concept", func(c *Config) { c.App.Mode = ModeServe; c.Concept.Format = "" }, ""},
		{"serve bad port", func(c *Config) { c.App.Mode = ModeServe; c.Server.Port = 0 }, "HTTP_PORT"},
		{"demo ignores server", func(c *Config) { c.Server.Port = 0 }, ""},
		{"serve zero rate limit", func(c *Config) { c.App.Mode = ModeServe; c.Server.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"serve rate limit disabled", func(c *Config) {
			c.App.Mode = ModeServe
			c.Server.RateLimitReqs = 0
			c.Server.RateLimitDisabled = true
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ErrorKinds(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Persona.Cohorts = 9
	if err := cfg.Validate(); !errors.Is(err, persona.ErrConfiguration) {
		t.Errorf("Validate() = %v, want persona.ErrConfiguration", err)
	}

	cfg = defaultConfig()
	cfg.Concept.Format = ""
	if err := cfg.Validate(); !errors.Is(err, persona.ErrValidation) {
		t.Errorf("Validate() = %v, want persona.ErrValidation", err)
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	p := cfg.PersonaSettings()
	if p.Cohorts != cfg.Persona.Cohorts || p.Seed != cfg.Persona.Seed {
		t.Errorf("PersonaSettings() = %+v", p)
	}
	p.AgeGroups[0] = "mutated"
	if cfg.Persona.AgeGroups[0] == "mutated" {
		t.Error("PersonaSettings() shares AgeGroups with Config")
	}

	c := cfg.DemoConcept()
	if c.Format != "video" || len(c.Categories) != 2 {
		t.Errorf("DemoConcept() = %+v", c)
	}

	if got := cfg.Server.Address(); got != "0.0.0.0:8080" {
		t.Errorf("Address() = %q, want 0.0.0.0:8080", got)
	}

	l := cfg.LoggingSettings(nil)
	if l.Level != "info" || !l.Timestamp {
		t.Errorf("LoggingSettings() = %+v", l)
	}
}
