// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

/*
Package persona turns raw interaction events into behavioral personas and
scores marketing concepts against them.

# Pipeline

	events ──► BuildFeatureMatrix ──► cluster.Standardize ──► Clusterer
	                                                           │
	            Registry ◄── ExtractPreferences (per cohort) ◄─┘

Each distinct user becomes one row of mean time spent per category. Rows are
standardized and partitioned into cohorts with seeded k-means. Every cohort
yields one Persona carrying its events, a placeholder age group and a
PreferenceProfile.

# Evaluation

Evaluate scores a Concept against a Persona:

	category    20 per matched top category
	format      min(format mean / overall mean, 2) × 30
	demographic 25 when the target age matches

A total of 60 or more is "yes", 40 or more "maybe", otherwise "no".

# Usage

	factory, err := persona.NewFactory(persona.DefaultConfig(), logger)
	if err != nil {
	    return err
	}
	reg, err := factory.Build(ctx, events)
	if err != nil {
	    return err
	}
	results, err := persona.EvaluateAll(reg, concept)

# Errors

All errors wrap one of ErrConfiguration, ErrEmptyCohort or ErrValidation.

# Thread Safety

A built Registry and its Personas are immutable and safe for concurrent reads.
A Factory is not safe for concurrent SetClusterer calls.
*/
package persona
