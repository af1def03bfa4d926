// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/digitaltwin/internal/persona"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/digitaltwin/config.yaml",
	"/etc/digitaltwin/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults, applied before file and env.
func defaultConfig() *Config {
	p := persona.DefaultConfig()
	return &Config{
		App: AppConfig{
			Mode: ModeDemo,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Persona: PersonaConfig{
			Cohorts:       p.Cohorts,
			Seed:          p.Seed,
			MaxIterations: p.MaxIterations,
			NInit:         p.NInit,
			Tolerance:     p.Tolerance,
			AgeGroups:     p.AgeGroups,
		},
		Ingest: IngestConfig{
			Source: SourceSynthetic,
			Synthetic: SyntheticConfig{
				Users:         100,
				EventsPerUser: 20,
				Seed:          42,
				Scale:         10,
				Categories:    []string{"tech", "fashion", "food", "travel", "fitness"},
				Formats:       []string{"image", "video", "reel"},
			},
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Concept: ConceptConfig{
			Categories:  []string{"tech", "fitness"},
			Format:      "video",
			TargetAge:   "25-34",
			Description: "Smart fitness tracker ad with tech focus",
		},
	}
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// PERSONA_COHORTS -> persona.cohorts
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"persona.age_groups",
	"ingest.synthetic.categories",
	"ingest.synthetic.formats",
	"server.cors_origins",
	"concept.categories",
}

// processSliceFields converts comma-separated string values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unlisted variables are ignored.
var envMappings = map[string]string{
	"app_mode": "app.mode",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"persona_cohorts":        "persona.cohorts",
	"persona_seed":           "persona.seed",
	"persona_max_iterations": "persona.max_iterations",
	"persona_n_init":         "persona.n_init",
	"persona_tolerance":      "persona.tolerance",
	"persona_age_groups":     "persona.age_groups",

	"ingest_source":                    "ingest.source",
	"ingest_path":                      "ingest.path",
	"ingest_synthetic_users":           "ingest.synthetic.users",
	"ingest_synthetic_events_per_user": "ingest.synthetic.events_per_user",
	"ingest_synthetic_seed":            "ingest.synthetic.seed",
	"ingest_synthetic_scale":           "ingest.synthetic.scale",
	"ingest_synthetic_categories":      "ingest.synthetic.categories",
	"ingest_synthetic_formats":         "ingest.synthetic.formats",

	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"cors_origins":          "server.cors_origins",
	"rate_limit_requests":   "server.rate_limit_reqs",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",

	"concept_categories":  "concept.categories",
	"concept_format":      "concept.format",
	"concept_target_age":  "concept.target_age",
	"concept_description": "concept.description",
}

// envTransformFunc maps an environment variable name to a koanf path, or ""
// to skip it.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
