// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package ingest

import (
	"context"
	"reflect"
	"testing"

	"github.com/tomtom215/digitaltwin/internal/persona"
)

func TestSynthetic_Shape(t *testing.T) {
	t.Parallel()

	src := NewSynthetic(SyntheticOptions{Users: 7, EventsPerUser: 3, Seed: 9})
	events, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(events) != 21 {
		t.Fatalf("len(events) = %d, want 21", len(events))
	}

	perUser := map[string]int{}
	categories := map[string]bool{"tech": true, "fashion": true, "food": true, "travel": true, "fitness": true}
	formats := map[string]bool{"image": true, "video": true, "reel": true}
	for _, ev := range events {
		perUser[ev.UserID]++
		if !categories[ev.Category] {
			t.Errorf("unexpected category %q", ev.Category)
		}
		if !formats[ev.Format] {
			t.Errorf("unexpected format %q", ev.Format)
		}
		if ev.TimeSpent < 0 {
			t.Errorf("negative time spent %v", ev.TimeSpent)
		}
	}
	if len(perUser) != 7 {
		t.Errorf("distinct users = %d, want 7", len(perUser))
	}
	for uid, n := range perUser {
		if n != 3 {
			t.Errorf("%s has %d events, want 3", uid, n)
		}
	}
	if events[0].UserID != "user_0" || events[20].UserID != "user_6" {
		t.Errorf("users not grouped in order: first=%s last=%s", events[0].UserID, events[20].UserID)
	}
}

func TestSynthetic_Deterministic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, _ := NewSynthetic(SyntheticOptions{Seed: 5}).Load(ctx)
	b, _ := NewSynthetic(SyntheticOptions{Seed: 5}).Load(ctx)
	c, _ := NewSynthetic(SyntheticOptions{Seed: 6}).Load(ctx)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different events")
	}
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical events")
	}
}

func TestSynthetic_Defaults(t *testing.T) {
	t.Parallel()

	events, err := NewSynthetic(SyntheticOptions{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(events) != 2000 {
		t.Errorf("len(events) = %d, want 2000", len(events))
	}
}

func TestSynthetic_CustomVocabulary(t *testing.T) {
	t.Parallel()

	src := NewSynthetic(SyntheticOptions{
		Users:         2,
		EventsPerUser: 4,
		Categories:    []string{"books"},
		Formats:       []string{"audio"},
	})
	events, _ := src.Load(context.Background())
	for _, ev := range events {
		if ev.Category != "books" || ev.Format != "audio" {
			t.Errorf("event = %+v, want books/audio", ev)
		}
	}
}

func TestSynthetic_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSynthetic(SyntheticOptions{}).Load(ctx); err == nil {
		t.Error("Load() with canceled context = nil error")
	}
}

func TestSynthetic_BuildsDefaultPersonas(t *testing.T) {
	t.Parallel()

	events, err := NewSynthetic(SyntheticOptions{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	reg, err := persona.BuildPersonas(events, 5, persona.DefaultAgeGroups, 42)
	if err != nil {
		t.Fatalf("BuildPersonas() error = %v", err)
	}

	users := 0
	for _, p := range reg.All() {
		users += p.Demographics().CohortSize
		if n := len(p.Preferences().TopCategories); n == 0 || n > 5 {
			t.Errorf("%s has %d top categories", p.ID(), n)
		}
	}
	if users != 100 {
		t.Errorf("cohort sizes sum to %d, want 100", users)
	}
}
