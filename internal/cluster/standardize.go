// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package cluster

import "math"

// zeroScale is the standard deviation below which a column is treated as constant.
const zeroScale = 1e-12

// ColumnStats holds the per-column mean and population standard deviation
// computed by Standardize.
type ColumnStats struct {
	Mean []float64
	Std  []float64
}

// Standardize rescales every column of rows to zero mean and unit variance.
//
// Variance is the population variance (divisor n). A column whose standard
// deviation is effectively zero maps to 0 for every row instead of dividing by
// zero. The input is not modified; rows must be rectangular.
func Standardize(rows [][]float64) [][]float64 {
	out, _ := StandardizeWithStats(rows)
	return out
}

// StandardizeWithStats is Standardize that also returns the fitted column statistics.
func StandardizeWithStats(rows [][]float64) ([][]float64, ColumnStats) {
	if len(rows) == 0 {
		return [][]float64{}, ColumnStats{}
	}

	dims := len(rows[0])
	n := float64(len(rows))
	stats := ColumnStats{
		Mean: make([]float64, dims),
		Std:  make([]float64, dims),
	}

	for _, row := range rows {
		for j, v := range row {
			stats.Mean[j] += v
		}
	}
	for j := range stats.Mean {
		stats.Mean[j] /= n
	}

	for _, row := range rows {
		for j, v := range row {
			d := v - stats.Mean[j]
			stats.Std[j] += d * d
		}
	}
	for j := range stats.Std {
		stats.Std[j] = math.Sqrt(stats.Std[j] / n)
	}

	out := make([][]float64, len(rows))
	for i, row := range rows {
		scaled := make([]float64, dims)
		for j, v := range row {
			if stats.Std[j] < zeroScale {
				continue
			}
			scaled[j] = (v - stats.Mean[j]) / stats.Std[j]
		}
		out[i] = scaled
	}

	return out, stats
}
