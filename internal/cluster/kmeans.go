// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package cluster

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidK is returned when the requested cluster count is not in [1, len(points)].
var ErrInvalidK = errors.New("cluster count out of range")

// ErrRaggedInput is returned when input rows do not share a single dimension.
var ErrRaggedInput = errors.New("points have inconsistent dimensions")

// Config contains parameters for k-means clustering.
type Config struct {
	// K is the number of clusters to produce.
	// Default: 5.
	K int

	// Seed initializes the pseudo-random source used for k-means++ seeding.
	// Default: 42.
	Seed int64

	// MaxIterations caps the Lloyd iterations of a single run.
	// Default: 300.
	MaxIterations int

	// NInit is the number of seeded restarts. The run with the lowest inertia wins.
	// Default: 10.
	NInit int

	// Tolerance is the relative centroid-shift tolerance used to declare convergence.
	// It is scaled by the mean per-feature variance of the input.
	// Default: 1e-4.
	Tolerance float64
}

// DefaultConfig returns the default k-means configuration.
func DefaultConfig() Config {
	return Config{
		K:             5,
		Seed:          42,
		MaxIterations: 300,
		NInit:         10,
		Tolerance:     1e-4,
	}
}

// Result is the outcome of a k-means fit.
type Result struct {
	// Labels holds the cluster index in [0, K) for every input row.
	Labels []int

	// Centroids holds the K cluster centers.
	Centroids [][]float64

	// Inertia is the sum of squared distances of points to their centroid.
	Inertia float64

	// Iterations is the number of Lloyd iterations of the winning run.
	Iterations int
}

// Sizes returns the number of points assigned to each cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Centroids))
	for _, l := range r.Labels {
		sizes[l]++
	}
	return sizes
}

// KMeans partitions points into K clusters using Lloyd's algorithm with
// k-means++ seeding. A KMeans value holds only configuration and may be reused.
type KMeans struct {
	config Config
}

// NewKMeans creates a k-means clusterer. Zero-valued fields take their defaults,
// except K which is validated by Fit.
func NewKMeans(cfg Config) *KMeans {
	def := DefaultConfig()
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	if cfg.NInit <= 0 {
		cfg.NInit = def.NInit
	}
	if cfg.Tolerance < 0 {
		cfg.Tolerance = def.Tolerance
	}
	return &KMeans{config: cfg}
}

// Config returns the effective configuration.
func (km *KMeans) Config() Config {
	return km.config
}

// Fit clusters points and returns the lowest-inertia run across NInit restarts.
// Each restart draws from the same seeded stream, so the whole fit is reproducible.
func (km *KMeans) Fit(points [][]float64) (*Result, error) {
	k := km.config.K
	if k < 1 || k > len(points) {
		return nil, fmt.Errorf("%w: k=%d with %d points", ErrInvalidK, k, len(points))
	}

	dims := len(points[0])
	for i, p := range points {
		if len(p) != dims {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedInput, i, len(p), dims)
		}
	}

	rng := rand.New(rand.NewSource(km.config.Seed)) //nolint:gosec // reproducible seeding, not security sensitive
	tol := km.config.Tolerance * meanVariance(points)

	var best *Result
	for run := 0; run < km.config.NInit; run++ {
		res := km.lloyd(points, seedPlusPlus(points, k, rng), tol)
		if best == nil || res.Inertia < best.Inertia {
			best = res
		}
	}

	return best, nil
}

// lloyd runs assignment/update iterations from the given initial centroids.
func (km *KMeans) lloyd(points, centroids [][]float64, tol float64) *Result {
	k := len(centroids)
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}
	dist := make([]float64, len(points))

	iterations := 0
	for iterations < km.config.MaxIterations {
		iterations++

		changed := assign(points, centroids, labels, dist)
		if relocateEmpty(labels, dist, k) {
			changed = true
		}
		if !changed && iterations > 1 {
			break
		}

		next := centroidsOf(points, labels, k)
		shift := 0.0
		for j := range next {
			shift += squaredDistance(next[j], centroids[j])
		}
		centroids = next

		if shift <= tol {
			assign(points, centroids, labels, dist)
			relocateEmpty(labels, dist, k)
			centroids = centroidsOf(points, labels, k)
			break
		}
	}

	inertia := 0.0
	for i, p := range points {
		inertia += squaredDistance(p, centroids[labels[i]])
	}

	return &Result{
		Labels:     labels,
		Centroids:  centroids,
		Inertia:    inertia,
		Iterations: iterations,
	}
}

// seedPlusPlus picks k initial centroids with the k-means++ D² weighting.
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, copyVec(points[rng.Intn(len(points))]))

	closest := make([]float64, len(points))
	for i, p := range points {
		closest[i] = squaredDistance(p, centroids[0])
	}

	for len(centroids) < k {
		total := 0.0
		for _, d := range closest {
			total += d
		}

		idx := 0
		if total == 0 {
			// All remaining points coincide with a centroid.
			idx = rng.Intn(len(points))
		} else {
			target := rng.Float64() * total
			acc := 0.0
			idx = len(points) - 1
			for i, d := range closest {
				acc += d
				if acc > target {
					idx = i
					break
				}
			}
		}

		c := copyVec(points[idx])
		centroids = append(centroids, c)
		for i, p := range points {
			if d := squaredDistance(p, c); d < closest[i] {
				closest[i] = d
			}
		}
	}

	return centroids
}

// assign labels every point with its nearest centroid and records the squared
// distance. Ties go to the lowest centroid index. Reports whether any label changed.
func assign(points, centroids [][]float64, labels []int, dist []float64) bool {
	changed := false
	for i, p := range points {
		bestJ := 0
		bestD := math.Inf(1)
		for j, c := range centroids {
			if d := squaredDistance(p, c); d < bestD {
				bestJ, bestD = j, d
			}
		}
		if labels[i] != bestJ {
			labels[i] = bestJ
			changed = true
		}
		dist[i] = bestD
	}
	return changed
}

// relocateEmpty moves, for every empty cluster, the point farthest from its own
// centroid (taken from a cluster that keeps at least one member) into the empty one.
// Reports whether any point moved.
func relocateEmpty(labels []int, dist []float64, k int) bool {
	counts := make([]int, k)
	for _, l := range labels {
		counts[l]++
	}

	moved := false
	for j := 0; j < k; j++ {
		if counts[j] > 0 {
			continue
		}
		far := -1
		for i, l := range labels {
			if counts[l] < 2 {
				continue
			}
			if far == -1 || dist[i] > dist[far] {
				far = i
			}
		}
		if far == -1 {
			return moved
		}
		counts[labels[far]]--
		labels[far] = j
		counts[j] = 1
		dist[far] = 0
		moved = true
	}
	return moved
}

// centroidsOf computes the mean of the points assigned to each cluster.
func centroidsOf(points [][]float64, labels []int, k int) [][]float64 {
	dims := len(points[0])
	sums := make([][]float64, k)
	for j := range sums {
		sums[j] = make([]float64, dims)
	}
	counts := make([]int, k)

	for i, p := range points {
		l := labels[i]
		counts[l]++
		for d, v := range p {
			sums[l][d] += v
		}
	}

	for j := range sums {
		if counts[j] == 0 {
			continue
		}
		for d := range sums[j] {
			sums[j][d] /= float64(counts[j])
		}
	}
	return sums
}

// meanVariance returns the average per-column population variance.
func meanVariance(points [][]float64) float64 {
	_, stats := StandardizeWithStats(points)
	if len(stats.Std) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range stats.Std {
		sum += s * s
	}
	return sum / float64(len(stats.Std))
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func copyVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
