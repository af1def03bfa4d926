// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package persona

import (
	"math"

	"github.com/tomtom215/digitaltwin/internal/cluster"
)

// DefaultAgeGroups is the placeholder demographic label list, one per cohort.
var DefaultAgeGroups = []string{"18-24", "25-34", "35-44", "45-54", "55+"}

// Config controls persona construction.
type Config struct {
	// Cohorts is the number of cohorts (and personas) to build.
	Cohorts int `json:"cohorts"`

	// Seed makes clustering reproducible.
	Seed int64 `json:"seed"`

	// MaxIterations bounds Lloyd iterations per k-means run.
	MaxIterations int `json:"max_iterations"`

	// NInit is the number of seeded k-means restarts; the lowest-inertia run wins.
	NInit int `json:"n_init"`

	// Tolerance is the relative centroid-shift convergence threshold.
	Tolerance float64 `json:"tolerance"`

	// AgeGroups assigns AgeGroups[i] to cohort i. Must hold at least Cohorts labels.
	AgeGroups []string `json:"age_groups"`
}

// DefaultConfig returns five cohorts over the default age groups, seed 42.
func DefaultConfig() Config {
	km := cluster.DefaultConfig()
	return Config{
		Cohorts:       km.K,
		Seed:          km.Seed,
		MaxIterations: km.MaxIterations,
		NInit:         km.NInit,
		Tolerance:     km.Tolerance,
		AgeGroups:     append([]string(nil), DefaultAgeGroups...),
	}
}

// Validate checks the configuration. Failures wrap ErrConfiguration.
//
//nolint:gocritic // value receiver keeps Config immutable
func (c Config) Validate() error {
	if c.Cohorts < 1 {
		return configErrorf("cohort count must be at least 1, got %d", c.Cohorts)
	}
	if c.Cohorts > len(c.AgeGroups) {
		return configErrorf("cohort count %d exceeds %d demographic labels", c.Cohorts, len(c.AgeGroups))
	}
	if c.MaxIterations < 0 {
		return configErrorf("max iterations must be non-negative, got %d", c.MaxIterations)
	}
	if c.NInit < 0 {
		return configErrorf("n_init must be non-negative, got %d", c.NInit)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
		return configErrorf("tolerance must be non-negative, got %v", c.Tolerance)
	}
	return nil
}

// Clone returns a deep copy.
//
//nolint:gocritic // value receiver keeps Config immutable
func (c Config) Clone() Config {
	out := c
	out.AgeGroups = append([]string(nil), c.AgeGroups...)
	return out
}

func (c Config) kmeans() cluster.Config {
	return cluster.Config{
		K:             c.Cohorts,
		Seed:          c.Seed,
		MaxIterations: c.MaxIterations,
		NInit:         c.NInit,
		Tolerance:     c.Tolerance,
	}
}
