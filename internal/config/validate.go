// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/digitaltwin/internal/logging"
	"github.com/tomtom215/digitaltwin/internal/persona"
)

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if err := c.validateApp(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validatePersona(); err != nil {
		return err
	}
	if err := c.validateIngest(); err != nil {
		return err
	}
	if c.App.Mode == ModeServe {
		if err := c.validateServer(); err != nil {
			return err
		}
	}
	return c.validateConcept()
}

func (c *Config) validateApp() error {
	switch c.App.Mode {
	case ModeDemo, ModeServe:
		return nil
	default:
		return fmt.Errorf("APP_MODE must be %q or %q, got %q", ModeDemo, ModeServe, c.App.Mode)
	}
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

// validatePersona applies the persona.Config rules.
func (c *Config) validatePersona() error {
	if err := c.PersonaSettings().Validate(); err != nil {
		return fmt.Errorf("persona settings: %w", err)
	}
	return nil
}

func (c *Config) validateIngest() error {
	switch c.Ingest.Source {
	case SourceSynthetic:
		return c.validateSynthetic()
	case SourceCSV, SourceParquet, SourceJSONL:
		if c.Ingest.Path == "" {
			return fmt.Errorf("INGEST_PATH is required when INGEST_SOURCE=%s", c.Ingest.Source)
		}
		return nil
	default:
		return fmt.Errorf("INGEST_SOURCE must be one of synthetic, csv, parquet, jsonl, got %q", c.Ingest.Source)
	}
}

func (c *Config) validateSynthetic() error {
	s := c.Ingest.Synthetic
	if s.Users < 1 {
		return fmt.Errorf("INGEST_SYNTHETIC_USERS must be at least 1, got %d", s.Users)
	}
	if s.EventsPerUser < 1 {
		return fmt.Errorf("INGEST_SYNTHETIC_EVENTS_PER_USER must be at least 1, got %d", s.EventsPerUser)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("INGEST_SYNTHETIC_SCALE must be positive, got %v", s.Scale)
	}
	if len(s.Categories) == 0 {
		return fmt.Errorf("INGEST_SYNTHETIC_CATEGORIES must not be empty")
	}
	if len(s.Formats) == 0 {
		return fmt.Errorf("INGEST_SYNTHETIC_FORMATS must not be empty")
	}
	return nil
}

func (c *Config) validateServer() error {
	s := c.Server
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.IdleTimeout <= 0 {
		return fmt.Errorf("HTTP timeouts must be positive")
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", s.ShutdownTimeout)
	}
	if !s.RateLimitDisabled {
		if s.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", s.RateLimitReqs)
		}
		if s.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", s.RateLimitWindow)
		}
	}
	return nil
}

// validateConcept only applies in demo mode, where the concept is evaluated.
func (c *Config) validateConcept() error {
	if c.App.Mode != ModeDemo {
		return nil
	}
	if err := persona.ValidateConcept(c.DemoConcept()); err != nil {
		return fmt.Errorf("concept settings: %w", err)
	}
	return nil
}
