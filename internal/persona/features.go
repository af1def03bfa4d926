// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package persona

import (
	"fmt"
	"sort"
)

// FeatureMatrix is the user × category matrix of mean engagement time.
//
// Rows follow UserIDs (ascending) and columns follow Categories (ascending), so
// the layout is a pure function of the event set regardless of event order.
type FeatureMatrix struct {
	UserIDs    []string
	Categories []string
	Values     [][]float64
}

// Rows returns the number of users.
func (m *FeatureMatrix) Rows() int {
	return len(m.UserIDs)
}

// ValidateEvents checks every event and returns the first failure.
func ValidateEvents(events []InteractionEvent) error {
	for i := range events {
		if err := validate(fmt.Sprintf("event %d", i), &events[i]); err != nil {
			return err
		}
	}
	return nil
}

// BuildFeatureMatrix aggregates events into one row per distinct user with one
// column per distinct category observed anywhere in the input.
//
// Users only appear if they have at least one event. Malformed events fail with
// ErrValidation.
func BuildFeatureMatrix(events []InteractionEvent) (*FeatureMatrix, error) {
	if err := ValidateEvents(events); err != nil {
		return nil, err
	}

	type acc struct {
		sum   float64
		count int
	}
	perUser := make(map[string]map[string]*acc)
	categorySet := make(map[string]struct{})

	for i := range events {
		ev := &events[i]
		cats, ok := perUser[ev.UserID]
		if !ok {
			cats = make(map[string]*acc)
			perUser[ev.UserID] = cats
		}
		a, ok := cats[ev.Category]
		if !ok {
			a = &acc{}
			cats[ev.Category] = a
		}
		a.sum += ev.TimeSpent
		a.count++
		categorySet[ev.Category] = struct{}{}
	}

	users := sortedKeys(perUser)
	categories := sortedKeys(categorySet)

	values := make([][]float64, len(users))
	for i, u := range users {
		row := make([]float64, len(categories))
		for j, c := range categories {
			if a, ok := perUser[u][c]; ok {
				row[j] = a.sum / float64(a.count)
			}
		}
		values[i] = row
	}

	return &FeatureMatrix{
		UserIDs:    users,
		Categories: categories,
		Values:     values,
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
