// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package persona

import (
	"errors"
	"math"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero cohorts", func(c *Config) { c.Cohorts = 0 }, true},
		{"too many cohorts", func(c *Config) { c.Cohorts = 6 }, true},
		{"extra labels", func(c *Config) { c.Cohorts = 2 }, false},
		{"negative iterations", func(c *Config) { c.MaxIterations = -1 }, true},
		{"negative n_init", func(c *Config) { c.NInit = -1 }, true},
		{"negative tolerance", func(c *Config) { c.Tolerance = -0.1 }, true},
		{"NaN tolerance", func(c *Config) { c.Tolerance = math.NaN() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("Validate() = %v, want ErrConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfig_DefaultsAndClone(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Cohorts != 5 || cfg.Seed != 42 || cfg.NInit != 10 || cfg.MaxIterations != 300 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}

	clone := cfg.Clone()
	clone.AgeGroups[0] = "changed"
	if cfg.AgeGroups[0] != "18-24" {
		t.Error("Clone() shares AgeGroups")
	}

	cfg.AgeGroups[1] = "changed"
	if DefaultAgeGroups[1] != "25-34" {
		t.Error("DefaultConfig() shares DefaultAgeGroups")
	}

	km := cfg.kmeans()
	if km.K != cfg.Cohorts || km.Seed != cfg.Seed || km.Tolerance != cfg.Tolerance {
		t.Errorf("kmeans() = %+v", km)
	}
}
