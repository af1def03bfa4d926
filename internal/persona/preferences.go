// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package persona

import (
	"fmt"
	"math"
	"sort"
)

// maxTopCategories is the number of categories kept in a profile.
const maxTopCategories = 5

// ExtractPreferences derives a PreferenceProfile from one cohort's events.
//
// Categories are ranked by mean time spent, highest first; equal means are
// ordered by label so the ranking never depends on event order. Every observed
// format is kept. An empty subset fails with ErrEmptyCohort.
func ExtractPreferences(events []InteractionEvent) (PreferenceProfile, error) {
	if len(events) == 0 {
		return PreferenceProfile{}, fmt.Errorf("no interactions to profile: %w", ErrEmptyCohort)
	}

	type acc struct {
		sum   float64
		count int
	}
	byCategory := make(map[string]*acc)
	byFormat := make(map[string]*acc)
	total := 0.0

	for i := range events {
		ev := &events[i]
		if math.IsNaN(ev.TimeSpent) || ev.TimeSpent < 0 {
			return PreferenceProfile{}, &ValidationError{
				Subject:  fmt.Sprintf("event %d", i),
				Messages: []string{"time_spent must be a non-negative number"},
			}
		}

		c, ok := byCategory[ev.Category]
		if !ok {
			c = &acc{}
			byCategory[ev.Category] = c
		}
		c.sum += ev.TimeSpent
		c.count++

		f, ok := byFormat[ev.Format]
		if !ok {
			f = &acc{}
			byFormat[ev.Format] = f
		}
		f.sum += ev.TimeSpent
		f.count++

		total += ev.TimeSpent
	}

	type ranked struct {
		label string
		mean  float64
	}
	ranking := make([]ranked, 0, len(byCategory))
	for label, a := range byCategory {
		ranking = append(ranking, ranked{label: label, mean: a.sum / float64(a.count)})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].mean != ranking[j].mean {
			return ranking[i].mean > ranking[j].mean
		}
		return ranking[i].label < ranking[j].label
	})

	n := len(ranking)
	if n > maxTopCategories {
		n = maxTopCategories
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = ranking[i].label
	}

	formats := make(map[string]float64, len(byFormat))
	for label, a := range byFormat {
		formats[label] = a.sum / float64(a.count)
	}

	avg := total / float64(len(events))
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return PreferenceProfile{}, fmt.Errorf("average engagement time is not finite: %w", ErrValidation)
	}

	return PreferenceProfile{
		TopCategories:     top,
		FormatPreference:  formats,
		AvgEngagementTime: avg,
	}, nil
}
