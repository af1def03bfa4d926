// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package cluster

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func columnMoments(rows [][]float64, col int) (mean, variance float64) {
	n := float64(len(rows))
	for _, r := range rows {
		mean += r[col]
	}
	mean /= n
	for _, r := range rows {
		d := r[col] - mean
		variance += d * d
	}
	return mean, variance / n
}

func TestStandardize_ZeroMeanUnitVariance(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{20, 5, 1},
		{5, 20, 2},
		{18, 6, 9},
		{3, 1, 4},
	}

	out := Standardize(rows)
	if len(out) != len(rows) {
		t.Fatalf("Standardize() returned %d rows, want %d", len(out), len(rows))
	}

	for col := 0; col < 3; col++ {
		mean, variance := columnMoments(out, col)
		if math.Abs(mean) > tolerance {
			t.Errorf("column %d mean = %v, want 0", col, mean)
		}
		if math.Abs(variance-1) > tolerance {
			t.Errorf("column %d variance = %v, want 1", col, variance)
		}
	}
}

func TestStandardize_ZeroVarianceColumn(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{7, 1},
		{7, 2},
		{7, 3},
	}

	out := Standardize(rows)
	for i, r := range out {
		if r[0] != 0 {
			t.Errorf("row %d constant column = %v, want 0", i, r[0])
		}
		if math.IsNaN(r[1]) || math.IsInf(r[1], 0) {
			t.Errorf("row %d varying column = %v, want finite", i, r[1])
		}
	}
}

func TestStandardize_FixedPoint(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{1.5, 10, 0},
		{2.5, 30, 0},
		{9.0, 20, 0},
		{4.0, 15, 0},
		{0.5, 50, 0},
	}

	once := Standardize(rows)
	twice := Standardize(once)

	for i := range once {
		for j := range once[i] {
			if math.Abs(once[i][j]-twice[i][j]) > tolerance {
				t.Errorf("re-standardized [%d][%d] = %v, want %v", i, j, twice[i][j], once[i][j])
			}
		}
	}
}

func TestStandardize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	_ = Standardize(rows)

	if rows[0][0] != 1 || rows[0][1] != 2 || rows[1][0] != 3 || rows[1][1] != 4 {
		t.Errorf("Standardize() mutated input: %v", rows)
	}
}

func TestStandardize_Deterministic(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{3, 1}, {8, 4}, {2, 2}}
	a := Standardize(rows)
	b := Standardize(rows)

	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("Standardize() not deterministic at [%d][%d]: %v vs %v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestStandardize_Empty(t *testing.T) {
	t.Parallel()

	out, stats := StandardizeWithStats(nil)
	if len(out) != 0 {
		t.Errorf("StandardizeWithStats(nil) rows = %d, want 0", len(out))
	}
	if len(stats.Mean) != 0 || len(stats.Std) != 0 {
		t.Errorf("StandardizeWithStats(nil) stats = %+v, want empty", stats)
	}
}

func TestStandardizeWithStats(t *testing.T) {
	t.Parallel()

	_, stats := StandardizeWithStats([][]float64{{2}, {4}, {6}})

	if stats.Mean[0] != 4 {
		t.Errorf("mean = %v, want 4", stats.Mean[0])
	}
	want := math.Sqrt(8.0 / 3.0)
	if math.Abs(stats.Std[0]-want) > tolerance {
		t.Errorf("std = %v, want %v", stats.Std[0], want)
	}
}
