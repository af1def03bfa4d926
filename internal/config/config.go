// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package config

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/digitaltwin/internal/logging"
	"github.com/tomtom215/digitaltwin/internal/persona"
)

// Run modes.
const (
	ModeDemo  = "demo"
	ModeServe = "serve"
)

// Ingest sources.
const (
	SourceSynthetic = "synthetic"
	SourceCSV       = "csv"
	SourceParquet   = "parquet"
	SourceJSONL     = "jsonl"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2):
//  1. Defaults from defaultConfig()
//  2. Optional YAML file (CONFIG_PATH, else config.yaml / config.yml)
//  3. Environment variables
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	App     AppConfig     `koanf:"app"`
	Logging LoggingConfig `koanf:"logging"`
	Persona PersonaConfig `koanf:"persona"`
	Ingest  IngestConfig  `koanf:"ingest"`
	Server  ServerConfig  `koanf:"server"`
	Concept ConceptConfig `koanf:"concept"`
}

// AppConfig selects what the binary does after building personas.
type AppConfig struct {
	Mode string `koanf:"mode"` // "demo" or "serve"
}

// LoggingConfig holds log level and output format.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// PersonaConfig holds persona construction settings.
type PersonaConfig struct {
	Cohorts       int      `koanf:"cohorts"`
	Seed          int64    `koanf:"seed"`
	MaxIterations int      `koanf:"max_iterations"`
	NInit         int      `koanf:"n_init"`
	Tolerance     float64  `koanf:"tolerance"`
	AgeGroups     []string `koanf:"age_groups"`
}

// IngestConfig selects the interaction event source.
type IngestConfig struct {
	Source    string          `koanf:"source"`
	Path      string          `koanf:"path"` // csv, parquet, jsonl
	Synthetic SyntheticConfig `koanf:"synthetic"`
}

// SyntheticConfig shapes generated demo data.
type SyntheticConfig struct {
	Users         int      `koanf:"users"`
	EventsPerUser int      `koanf:"events_per_user"`
	Seed          int64    `koanf:"seed"`
	Scale         float64  `koanf:"scale"` // mean of the exponential time-spent distribution
	Categories    []string `koanf:"categories"`
	Formats       []string `koanf:"formats"`
}

// ServerConfig holds HTTP server settings for serve mode.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Address returns host:port.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ConceptConfig is the concept evaluated in demo mode.
type ConceptConfig struct {
	Categories  []string `koanf:"categories"`
	Format      string   `koanf:"format"`
	TargetAge   string   `koanf:"target_age"`
	Description string   `koanf:"description"`
}

// PersonaSettings converts the persona section for persona.NewFactory.
func (c *Config) PersonaSettings() persona.Config {
	return persona.Config{
		Cohorts:       c.Persona.Cohorts,
		Seed:          c.Persona.Seed,
		MaxIterations: c.Persona.MaxIterations,
		NInit:         c.Persona.NInit,
		Tolerance:     c.Persona.Tolerance,
		AgeGroups:     append([]string(nil), c.Persona.AgeGroups...),
	}
}

// DemoConcept converts the concept section.
func (c *Config) DemoConcept() persona.Concept {
	return persona.Concept{
		Categories:  append([]string(nil), c.Concept.Categories...),
		Format:      c.Concept.Format,
		TargetAge:   c.Concept.TargetAge,
		Description: c.Concept.Description,
	}
}

// LoggingSettings converts the logging section for logging.Init.
func (c *Config) LoggingSettings(out io.Writer) logging.Config {
	return logging.Config{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		Caller:    c.Logging.Caller,
		Timestamp: true,
		Output:    out,
	}
}

// String summarizes the configuration for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("mode=%s source=%s cohorts=%d seed=%d", c.App.Mode, c.Ingest.Source, c.Persona.Cohorts, c.Persona.Seed)
}
