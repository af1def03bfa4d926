// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package persona

import (
	"fmt"
)

// Scoring weights and tier thresholds.
const (
	categoryMatchPoints = 20.0
	formatPoints        = 30.0
	formatRatioCap      = 2.0
	demographicPoints   = 25.0

	yesThreshold   = 60.0
	maybeThreshold = 40.0
)

// Tier reasons.
const (
	ReasonStrong   = "Strong alignment with past engagement patterns"
	ReasonModerate = "Moderate interest based on partial category match"
	ReasonLow      = "Low relevance to demonstrated interests"
)

// Evaluate scores a concept against a persona. It has no side effects.
//
// The score sums three terms: 20 per concept category found in the persona's
// top categories, up to 60 for format affinity (format mean over overall mean,
// capped at 2, times 30) and 25 when the target age matches the persona's age
// group. Scores of 60 and above are "yes", 40 and above "maybe", else "no".
func Evaluate(p *Persona, c Concept) (Verdict, error) {
	if p == nil {
		return Verdict{}, fmt.Errorf("nil persona: %w", ErrValidation)
	}
	if err := ValidateConcept(c); err != nil {
		return Verdict{}, err
	}
	return score(p, c), nil
}

// ValidateConcept checks that a concept can be scored.
func ValidateConcept(c Concept) error {
	return validate("concept", &c)
}

func score(p *Persona, c Concept) Verdict {
	var b ScoreBreakdown

	top := make(map[string]struct{}, len(p.preferences.TopCategories))
	for _, cat := range p.preferences.TopCategories {
		top[cat] = struct{}{}
	}
	counted := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		if _, dup := counted[cat]; dup {
			continue
		}
		counted[cat] = struct{}{}
		if _, ok := top[cat]; ok {
			b.Category += categoryMatchPoints
		}
	}

	avg := p.preferences.AvgEngagementTime
	if pref, ok := p.preferences.FormatPreference[c.Format]; ok && avg > 0 {
		ratio := pref / avg
		if ratio > formatRatioCap {
			ratio = formatRatioCap
		}
		b.Format = ratio * formatPoints
	}

	var reasons []string
	if c.TargetAge != "" && c.TargetAge == p.demographics.AgeGroup {
		b.Demographic = demographicPoints
		reasons = append(reasons, fmt.Sprintf("Aligns with %s age preferences", c.TargetAge))
	}

	total := b.Category + b.Format + b.Demographic

	var resp Response
	switch {
	case total >= yesThreshold:
		resp = ResponseYes
		reasons = append(reasons, ReasonStrong)
	case total >= maybeThreshold:
		resp = ResponseMaybe
		reasons = append(reasons, ReasonModerate)
	default:
		resp = ResponseNo
		reasons = append(reasons, ReasonLow)
	}

	return Verdict{
		Response:  resp,
		Score:     total,
		Reasons:   reasons,
		Breakdown: b,
	}
}

// Evaluation pairs a persona id with its verdict.
type Evaluation struct {
	PersonaID string  `json:"persona_id"`
	Verdict   Verdict `json:"verdict"`
}

// EvaluateAll scores a concept against every persona in cohort order.
func EvaluateAll(r *Registry, c Concept) ([]Evaluation, error) {
	if r == nil {
		return nil, fmt.Errorf("nil registry: %w", ErrValidation)
	}
	if err := ValidateConcept(c); err != nil {
		return nil, err
	}

	out := make([]Evaluation, 0, len(r.personas))
	for _, p := range r.personas {
		out = append(out, Evaluation{PersonaID: p.id, Verdict: score(p, c)})
	}
	return out, nil
}
