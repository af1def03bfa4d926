// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package persona

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func ev(user, category, format string, t float64) InteractionEvent {
	return InteractionEvent{UserID: user, Category: category, Format: format, TimeSpent: t}
}

func TestBuildFeatureMatrix(t *testing.T) {
	t.Parallel()

	events := []InteractionEvent{
		ev("u2", "tech", "video", 10),
		ev("u1", "food", "image", 4),
		ev("u1", "food", "reel", 6),
		ev("u2", "tech", "image", 20),
		ev("u1", "tech", "video", 3),
	}

	m, err := BuildFeatureMatrix(events)
	if err != nil {
		t.Fatalf("BuildFeatureMatrix() error = %v", err)
	}

	if want := []string{"u1", "u2"}; !reflect.DeepEqual(m.UserIDs, want) {
		t.Errorf("UserIDs = %v, want %v", m.UserIDs, want)
	}
	if want := []string{"food", "tech"}; !reflect.DeepEqual(m.Categories, want) {
		t.Errorf("Categories = %v, want %v", m.Categories, want)
	}

	want := [][]float64{
		{5, 3},
		{0, 15},
	}
	if !reflect.DeepEqual(m.Values, want) {
		t.Errorf("Values = %v, want %v", m.Values, want)
	}
	if m.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", m.Rows())
	}
}

func TestBuildFeatureMatrix_OrderIndependent(t *testing.T) {
	t.Parallel()

	events := []InteractionEvent{
		ev("a", "x", "image", 1),
		ev("b", "y", "image", 2),
		ev("a", "y", "video", 3),
		ev("c", "x", "reel", 4),
	}
	reversed := make([]InteractionEvent, len(events))
	for i := range events {
		reversed[len(events)-1-i] = events[i]
	}

	m1, err := BuildFeatureMatrix(events)
	if err != nil {
		t.Fatalf("BuildFeatureMatrix() error = %v", err)
	}
	m2, err := BuildFeatureMatrix(reversed)
	if err != nil {
		t.Fatalf("BuildFeatureMatrix() error = %v", err)
	}

	if !reflect.DeepEqual(m1, m2) {
		t.Errorf("matrices differ with event order:\n%+v\n%+v", m1, m2)
	}
}

func TestBuildFeatureMatrix_Empty(t *testing.T) {
	t.Parallel()

	m, err := BuildFeatureMatrix(nil)
	if err != nil {
		t.Fatalf("BuildFeatureMatrix(nil) error = %v", err)
	}
	if m.Rows() != 0 || len(m.Categories) != 0 {
		t.Errorf("BuildFeatureMatrix(nil) = %+v, want empty", m)
	}
}

func TestBuildFeatureMatrix_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event InteractionEvent
	}{
		{"missing user", ev("", "tech", "video", 1)},
		{"missing category", ev("u", "", "video", 1)},
		{"missing format", ev("u", "tech", "", 1)},
		{"negative time", ev("u", "tech", "video", -1)},
		{"NaN time", ev("u", "tech", "video", math.NaN())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := BuildFeatureMatrix([]InteractionEvent{ev("ok", "tech", "video", 1), tt.event})
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("BuildFeatureMatrix() error = %v, want ErrValidation", err)
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %T is not *ValidationError", err)
			}
			if verr.Subject != "event 1" {
				t.Errorf("Subject = %q, want %q", verr.Subject, "event 1")
			}
			if len(verr.Messages) == 0 {
				t.Error("Messages is empty")
			}
			if verr.Fields == nil || len(verr.Fields.Errors()) != len(verr.Messages) {
				t.Errorf("Fields = %v, want one entry per message", verr.Fields)
			}
		})
	}
}
