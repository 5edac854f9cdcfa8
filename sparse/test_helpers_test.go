// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the engine tests and benchmarks.
//   - Re-check storage invariants after every mutation in property tests.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// mustZeros allocates an r×c all-zero float64 matrix or fails the test.
func mustZeros(tb testing.TB, r, c int, opts ...sparse.Option) *sparse.Matrix[float64] {
	tb.Helper()
	m, err := sparse.NewZeros[float64](r, c, opts...)
	require.NoError(tb, err)

	return m
}

// mustDense builds a float64 matrix from a row-major literal or fails the test.
func mustDense(tb testing.TB, data [][]float64) *sparse.Matrix[float64] {
	tb.Helper()
	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}
	m, err := sparse.NewFromDense(data, len(data), cols)
	require.NoError(tb, err)

	return m
}

// mustSet assigns v at (i, j) and re-validates every invariant.
func mustSet(tb testing.TB, m *sparse.Matrix[float64], i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v))
	require.NoError(tb, m.Check())
}

// mustAt reads (i, j) or fails the test.
func mustAt[T sparse.Number](tb testing.TB, m *sparse.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// fillSparseRand writes roughly density·r·c random non-zero values in [-1,1)
// into m at random cells. Deterministic for a given seed.
func fillSparseRand(tb testing.TB, m *sparse.Matrix[float64], density float64, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := int(density * float64(m.Rows()*m.Cols()))
	for k := 0; k < n; k++ {
		v := rng.Float64()*2 - 1
		if v == 0 {
			v = 0.5
		}
		require.NoError(tb, m.Set(rng.Intn(m.Rows()), rng.Intn(m.Cols()), v))
	}
}

// toDense reads every cell of m into a row-major slice.
func toDense(tb testing.TB, m *sparse.Matrix[float64]) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = mustAt(tb, m, i, j)
		}
	}

	return out
}

// scenario3x3 is the 3×3 matrix with (1,0)=1 and (1,2)=1.
func scenario3x3(tb testing.TB) *sparse.Matrix[float64] {
	tb.Helper()
	m := mustZeros(tb, 3, 3)
	mustSet(tb, m, 1, 0, 1)
	mustSet(tb, m, 1, 2, 1)

	return m
}
