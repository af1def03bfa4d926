// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package ingest

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/tomtom215/digitaltwin/internal/persona"
)

// SyntheticOptions shapes generated data. Zero values take the defaults.
type SyntheticOptions struct {
	Users         int
	EventsPerUser int
	Seed          int64
	Scale         float64
	Categories    []string
	Formats       []string
}

// Synthetic generates a reproducible demo event set. Categories and formats
// are drawn uniformly; time spent is exponential with mean Scale.
type Synthetic struct {
	opts SyntheticOptions
}

// NewSynthetic returns a generator with defaults applied: 100 users, 20
// events each, seed 42, scale 10, five categories and three formats.
func NewSynthetic(opts SyntheticOptions) *Synthetic {
	if opts.Users <= 0 {
		opts.Users = 100
	}
	if opts.EventsPerUser <= 0 {
		opts.EventsPerUser = 20
	}
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	if opts.Scale <= 0 {
		opts.Scale = 10
	}
	if len(opts.Categories) == 0 {
		opts.Categories = []string{"tech", "fashion", "food", "travel", "fitness"}
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{"image", "video", "reel"}
	}
	return &Synthetic{opts: opts}
}

// Name returns "synthetic".
func (s *Synthetic) Name() string {
	return "synthetic"
}

// Load generates Users × EventsPerUser events grouped by user.
func (s *Synthetic) Load(ctx context.Context) ([]persona.InteractionEvent, error) {
	o := s.opts
	rng := rand.New(rand.NewSource(o.Seed))

	events := make([]persona.InteractionEvent, 0, o.Users*o.EventsPerUser)
	for u := 0; u < o.Users; u++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		uid := fmt.Sprintf("user_%d", u)
		for i := 0; i < o.EventsPerUser; i++ {
			events = append(events, persona.InteractionEvent{
				UserID:    uid,
				Category:  o.Categories[rng.Intn(len(o.Categories))],
				Format:    o.Formats[rng.Intn(len(o.Formats))],
				TimeSpent: rng.ExpFloat64() * o.Scale,
			})
		}
	}
	return events, nil
}
