// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

// Package cluster implements the numeric side of cohort discovery: column
// standardization and centroid-based (k-means) partitioning of dense vectors.
//
// The package knows nothing about interaction events or personas. It operates on
// row-major [][]float64 matrices so it can be reused by any caller that produces
// a feature matrix.
//
// # Determinism
//
// All randomness flows through a math/rand source created from Config.Seed. The
// same seed and the same input matrix always produce the same labels, centroids
// and inertia within one build of this package. Exact cluster boundaries are not
// guaranteed to match other k-means implementations, only to be stable here.
//
// # Usage
//
//	scaled := cluster.Standardize(rows)
//	km := cluster.NewKMeans(cluster.Config{K: 5, Seed: 42})
//	res, err := km.Fit(scaled)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Labels)
package cluster
