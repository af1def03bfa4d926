// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package persona

import (
	"strings"
)

// InteractionEvent is one observed user action. Events are supplied by an
// external source and are never created or mutated by this package.
type InteractionEvent struct {
	// UserID identifies the user who performed the action.
	UserID string `json:"user_id" validate:"required"`

	// Category is the content category engaged with (e.g. "tech", "food").
	Category string `json:"category" validate:"required"`

	// Format is the content format (e.g. "image", "video", "reel").
	Format string `json:"format" validate:"required"`

	// TimeSpent is the engagement time in seconds. Must be finite and non-negative.
	TimeSpent float64 `json:"time_spent" validate:"finite,gte=0"`
}

// Cohort is a set of users sharing one cluster assignment.
type Cohort struct {
	// Index is the cohort index in [0, n_cohorts).
	Index int `json:"index"`

	// UserIDs lists the members in ascending order.
	UserIDs []string `json:"user_ids"`
}

// Size returns the number of members.
func (c Cohort) Size() int {
	return len(c.UserIDs)
}

// PreferenceProfile summarizes a cohort's engagement.
type PreferenceProfile struct {
	// TopCategories holds up to five categories ranked by mean engagement time
	// (descending, ties broken by label).
	TopCategories []string `json:"top_categories"`

	// FormatPreference maps every observed format to its mean engagement time.
	FormatPreference map[string]float64 `json:"format_preference"`

	// AvgEngagementTime is the mean time spent over all of the cohort's events.
	AvgEngagementTime float64 `json:"avg_engagement_time"`
}

// clone returns a deep copy so callers cannot reach persona internals.
func (p PreferenceProfile) clone() PreferenceProfile {
	top := make([]string, len(p.TopCategories))
	copy(top, p.TopCategories)

	formats := make(map[string]float64, len(p.FormatPreference))
	for k, v := range p.FormatPreference {
		formats[k] = v
	}

	return PreferenceProfile{
		TopCategories:     top,
		FormatPreference:  formats,
		AvgEngagementTime: p.AvgEngagementTime,
	}
}

// Demographics is the demographic descriptor attached to a persona.
type Demographics struct {
	// AgeGroup is the age-group bucket label.
	AgeGroup string `json:"age_group"`

	// CohortSize is the number of users in the persona's cohort.
	CohortSize int `json:"cohort_size"`
}

// Concept is a candidate marketing idea to evaluate against personas.
type Concept struct {
	// Categories are the content categories the concept targets.
	Categories []string `json:"categories" validate:"dive,required"`

	// Format is the delivery format. Required.
	Format string `json:"format" validate:"required"`

	// TargetAge is the optional target age-group label.
	TargetAge string `json:"target_age,omitempty"`

	// Description is free text carried for reporting only.
	Description string `json:"description,omitempty"`
}

// Response is the categorical verdict of a concept evaluation.
type Response string

const (
	// ResponseYes means strong predicted approval.
	ResponseYes Response = "yes"
	// ResponseMaybe means moderate predicted interest.
	ResponseMaybe Response = "maybe"
	// ResponseNo means low predicted relevance.
	ResponseNo Response = "no"
)

// String returns the response label.
func (r Response) String() string {
	return string(r)
}

// ScoreBreakdown itemizes the terms that make up a verdict's score.
type ScoreBreakdown struct {
	Category    float64 `json:"category"`
	Format      float64 `json:"format"`
	Demographic float64 `json:"demographic"`
}

// Verdict is the result of scoring one concept against one persona.
type Verdict struct {
	// Response is yes, maybe or no.
	Response Response `json:"response"`

	// Score is the raw summed score (not rounded or clamped).
	Score float64 `json:"score"`

	// Reasons holds the ordered justification strings.
	Reasons []string `json:"reasons"`

	// Breakdown itemizes Score.
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Reason returns the reasons joined with single spaces for display.
func (v Verdict) Reason() string {
	return strings.Join(v.Reasons, " ")
}
