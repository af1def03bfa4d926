// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package persona

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/digitaltwin/internal/cluster"
	"github.com/tomtom215/digitaltwin/internal/metrics"
)

// Persona is the synthetic representative of one cohort. It is immutable once
// built; accessors return copies.
type Persona struct {
	id           string
	cohort       Cohort
	interactions []InteractionEvent
	demographics Demographics
	preferences  PreferenceProfile
}

// ID returns the persona id ("persona_<cohort index>").
func (p *Persona) ID() string {
	return p.id
}

// Cohort returns the cohort this persona represents.
func (p *Persona) Cohort() Cohort {
	return Cohort{Index: p.cohort.Index, UserIDs: append([]string(nil), p.cohort.UserIDs...)}
}

// Interactions returns the cohort's events in input order.
func (p *Persona) Interactions() []InteractionEvent {
	return append([]InteractionEvent(nil), p.interactions...)
}

// Demographics returns the demographic descriptor.
func (p *Persona) Demographics() Demographics {
	return p.demographics
}

// Preferences returns the preference profile.
func (p *Persona) Preferences() PreferenceProfile {
	return p.preferences.clone()
}

// Summary is the serializable view of a persona.
type Summary struct {
	ID           string            `json:"id"`
	Cohort       int               `json:"cohort"`
	Interactions int               `json:"interactions"`
	Demographics Demographics      `json:"demographics"`
	Preferences  PreferenceProfile `json:"preferences"`
}

// Summary returns the serializable view of the persona.
func (p *Persona) Summary() Summary {
	return Summary{
		ID:           p.id,
		Cohort:       p.cohort.Index,
		Interactions: len(p.interactions),
		Demographics: p.demographics,
		Preferences:  p.preferences.clone(),
	}
}

// Registry holds the personas of one build. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	buildID    string
	builtAt    time.Time
	personas   []*Persona
	byID       map[string]*Persona
	assignment map[string]int
}

// BuildID uniquely identifies this build.
func (r *Registry) BuildID() string {
	return r.buildID
}

// BuiltAt returns the build completion time.
func (r *Registry) BuiltAt() time.Time {
	return r.builtAt
}

// Get returns the persona with the given id.
func (r *Registry) Get(id string) (*Persona, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// IDs returns persona ids in cohort order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.personas))
	for i, p := range r.personas {
		ids[i] = p.id
	}
	return ids
}

// All returns personas in cohort order.
func (r *Registry) All() []*Persona {
	return append([]*Persona(nil), r.personas...)
}

// Len returns the number of personas.
func (r *Registry) Len() int {
	return len(r.personas)
}

// Assignment returns a copy of the user → cohort index mapping.
func (r *Registry) Assignment() map[string]int {
	out := make(map[string]int, len(r.assignment))
	for k, v := range r.assignment {
		out[k] = v
	}
	return out
}

// CohortOf returns the cohort index a user was assigned to.
func (r *Registry) CohortOf(userID string) (int, bool) {
	idx, ok := r.assignment[userID]
	return idx, ok
}

// PersonaOf returns the persona representing a user's cohort.
func (r *Registry) PersonaOf(userID string) (*Persona, bool) {
	idx, ok := r.assignment[userID]
	if !ok {
		return nil, false
	}
	return r.personas[idx], true
}

// Cohorts returns every cohort in index order.
func (r *Registry) Cohorts() []Cohort {
	out := make([]Cohort, len(r.personas))
	for i, p := range r.personas {
		out[i] = p.Cohort()
	}
	return out
}

// Clusterer partitions standardized feature rows into cfg.Cohorts groups.
// Labels must be in [0, cfg.Cohorts) and one per row.
type Clusterer interface {
	Cluster(points [][]float64, cfg Config) ([]int, error)
}

// KMeansClusterer is the default Clusterer. A nil Logger disables fit logging.
type KMeansClusterer struct {
	Logger *zerolog.Logger
}

// Cluster runs seeded k-means.
func (c KMeansClusterer) Cluster(points [][]float64, cfg Config) ([]int, error) {
	res, err := cluster.NewKMeans(cfg.kmeans()).Fit(points)
	if err != nil {
		if errors.Is(err, cluster.ErrInvalidK) {
			return nil, fmt.Errorf("%v: %w", err, ErrConfiguration)
		}
		return nil, err
	}
	if c.Logger != nil {
		c.Logger.Debug().
			Int("iterations", res.Iterations).
			Float64("inertia", res.Inertia).
			Ints("sizes", res.Sizes()).
			Msg("k-means fit")
	}
	return res.Labels, nil
}

// Factory builds registries from interaction events.
type Factory struct {
	cfg       Config
	logger    zerolog.Logger
	clusterer Clusterer
	now       func() time.Time
}

// NewFactory validates cfg and returns a Factory using k-means clustering.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFactory(cfg Config, logger zerolog.Logger) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Factory{
		cfg:    cfg.Clone(),
		logger: logger.With().Str("component", "persona").Logger(),
		now:    time.Now,
	}
	f.clusterer = KMeansClusterer{Logger: &f.logger}
	return f, nil
}

// SetClusterer replaces the clustering strategy.
func (f *Factory) SetClusterer(c Clusterer) {
	if c != nil {
		f.clusterer = c
	}
}

// Config returns a copy of the factory configuration.
func (f *Factory) Config() Config {
	return f.cfg.Clone()
}

// Build runs the full pipeline: feature matrix, standardization, clustering,
// then one persona per cohort.
func (f *Factory) Build(ctx context.Context, events []InteractionEvent) (*Registry, error) {
	start := f.now()
	reg, err := f.build(ctx, events)
	elapsed := time.Since(start)

	metrics.PersonaBuildDuration.Observe(elapsed.Seconds())
	if err != nil {
		metrics.PersonaBuildsTotal.WithLabelValues("error").Inc()
		f.logger.Warn().Err(err).Int("events", len(events)).Msg("persona build failed")
		return nil, err
	}
	metrics.PersonaBuildsTotal.WithLabelValues("success").Inc()
	for _, p := range reg.personas {
		metrics.PersonaCohortSize.WithLabelValues(p.id).Set(float64(p.demographics.CohortSize))
	}

	f.logger.Info().
		Str("build_id", reg.buildID).
		Int("events", len(events)).
		Int("users", len(reg.assignment)).
		Int("personas", len(reg.personas)).
		Dur("duration", elapsed).
		Msg("personas built")
	return reg, nil
}

func (f *Factory) build(ctx context.Context, events []InteractionEvent) (*Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matrix, err := BuildFeatureMatrix(events)
	if err != nil {
		return nil, err
	}

	k := f.cfg.Cohorts
	if k > matrix.Rows() {
		return nil, configErrorf("cohort count %d exceeds %d users", k, matrix.Rows())
	}

	scaled := cluster.Standardize(matrix.Values)
	f.logger.Debug().
		Int("users", matrix.Rows()).
		Int("categories", len(matrix.Categories)).
		Msg("feature matrix standardized")

	labels, err := f.clusterer.Cluster(scaled, f.cfg.Clone())
	if err != nil {
		return nil, fmt.Errorf("cluster users: %w", err)
	}
	if len(labels) != matrix.Rows() {
		return nil, configErrorf("clusterer returned %d labels for %d users", len(labels), matrix.Rows())
	}

	assignment := make(map[string]int, len(labels))
	members := make([][]string, k)
	for i, label := range labels {
		if label < 0 || label >= k {
			return nil, configErrorf("cluster label %d out of range [0, %d)", label, k)
		}
		uid := matrix.UserIDs[i]
		assignment[uid] = label
		members[label] = append(members[label], uid)
	}

	subsets := make([][]InteractionEvent, k)
	for i := range events {
		label := assignment[events[i].UserID]
		subsets[label] = append(subsets[label], events[i])
	}

	reg := &Registry{
		buildID:    uuid.NewString(),
		personas:   make([]*Persona, k),
		byID:       make(map[string]*Persona, k),
		assignment: assignment,
	}

	for i := 0; i < k; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prefs, err := ExtractPreferences(subsets[i])
		if err != nil {
			return nil, fmt.Errorf("cohort %d: %w", i, err)
		}

		p := &Persona{
			id:           fmt.Sprintf("persona_%d", i),
			cohort:       Cohort{Index: i, UserIDs: members[i]},
			interactions: subsets[i],
			demographics: Demographics{
				AgeGroup:   f.cfg.AgeGroups[i],
				CohortSize: len(members[i]),
			},
			preferences: prefs,
		}
		reg.personas[i] = p
		reg.byID[p.id] = p

		f.logger.Debug().
			Str("persona", p.id).
			Int("users", len(members[i])).
			Strs("top_categories", prefs.TopCategories).
			Msg("persona created")
	}

	reg.builtAt = f.now()
	return reg, nil
}

// BuildPersonas builds a registry with default clustering settings.
func BuildPersonas(events []InteractionEvent, nCohorts int, demographicLabels []string, seed int64) (*Registry, error) {
	cfg := DefaultConfig()
	cfg.Cohorts = nCohorts
	cfg.AgeGroups = demographicLabels
	cfg.Seed = seed

	f, err := NewFactory(cfg, zerolog.Nop())
	if err != nil {
		return nil, err
	}
	return f.Build(context.Background(), events)
}
