// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the compressed-row storage,
// the accessor and the invariant-preserving mutator.
package sparse_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestNewZerosInvalidDimensions ensures negative shapes are rejected.
func TestNewZerosInvalidDimensions(t *testing.T) {
	_, err := sparse.NewZeros[float64](-1, 3)                // negative rows
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = sparse.NewZeros[float64](3, -1)                 // negative cols
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = sparse.NewIdentity[int](-2)                     // negative order
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewZerosLayout checks the all-zero layout: rowPtr of rows+1 zeros, no entries.
func TestNewZerosLayout(t *testing.T) {
	m := mustZeros(t, 3, 4) // 3×4 all-zero

	require.Equal(t, 3, m.Rows())                      // rows
	require.Equal(t, 4, m.Cols())                      // cols
	require.Equal(t, 0, m.NNZ())                       // nothing stored
	require.Equal(t, []int{0, 0, 0, 0}, m.RowPtr())    // rows+1 zero boundaries
	require.Empty(t, m.ColIdx())                       // no columns
	require.Empty(t, m.Values())                       // no values
	require.NoError(t, m.Check())                      // invariants hold
	require.Equal(t, 0.0, mustAt(t, m, 2, 3))          // implicit zero
	require.Equal(t, sparse.DefaultEpsilon, m.Options().Epsilon()) // default policy
}

// TestDegenerateShapes verifies 0×N and N×0 matrices are legal.
func TestDegenerateShapes(t *testing.T) {
	m := mustZeros(t, 0, 5)
	require.Equal(t, []int{0}, m.RowPtr()) // single boundary
	require.NoError(t, m.Check())

	m = mustZeros(t, 2, 0)
	_, err := m.At(0, 0)                             // no column exists
	require.ErrorIs(t, err, sparse.ErrOutOfRange) // out of range
}

// TestIdentityLayout checks one unit entry per row on the diagonal.
func TestIdentityLayout(t *testing.T) {
	m, err := sparse.NewIdentity[float64](4)
	require.NoError(t, err)

	require.Equal(t, 4, m.NNZ())                       // one entry per row
	require.Equal(t, []int{0, 1, 2, 3, 4}, m.RowPtr()) // unit steps
	require.Equal(t, []int{0, 1, 2, 3}, m.ColIdx())    // diagonal columns
	require.Equal(t, []float64{1, 1, 1, 1}, m.Values())
	require.NoError(t, m.Check())

	// eps >= 1 makes the unit value itself "zero".
	m, err = sparse.NewIdentity[float64](3, sparse.WithEpsilon(1))
	require.NoError(t, err)
	require.Equal(t, 0, m.NNZ())
}

// TestAtSetOutOfBounds ensures At/Set return ErrOutOfRange without mutating.
func TestAtSetOutOfBounds(t *testing.T) {
	m := scenario3x3(t)
	before := m.Clone()

	_, err := m.At(-1, 0)                                  // negative row
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds) // alias of ErrOutOfRange

	_, err = m.At(0, 3)                              // column == cols
	require.ErrorIs(t, err, sparse.ErrOutOfRange) // out of range

	err = m.Set(3, 0, 1)                             // row == rows
	require.ErrorIs(t, err, sparse.ErrOutOfRange) // out of range

	err = m.Set(0, -1, 1)                            // negative column
	require.ErrorIs(t, err, sparse.ErrOutOfRange) // out of range

	require.True(t, m.Equal(before)) // nothing changed
}

// TestNilReceiver ensures nil matrices report ErrNilMatrix instead of panicking.
func TestNilReceiver(t *testing.T) {
	var m *sparse.Matrix[float64]

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), sparse.ErrNilMatrix)
	require.ErrorIs(t, m.Check(), sparse.ErrNilMatrix)
}

// TestSetFourCases walks through overwrite, remove, insert and no-op.
func TestSetFourCases(t *testing.T) {
	m := mustZeros(t, 3, 3)

	// absent, zero → no-op
	mustSet(t, m, 0, 0, 0)
	require.Equal(t, 0, m.NNZ())

	// absent, non-zero → insert; boundaries after row 1 shift by +1
	mustSet(t, m, 1, 1, 5)
	require.Equal(t, []int{0, 0, 1, 1}, m.RowPtr())

	// exists, non-zero → overwrite; structure unchanged
	mustSet(t, m, 1, 1, 7)
	require.Equal(t, []int{0, 0, 1, 1}, m.RowPtr())
	require.Equal(t, []float64{7}, m.Values())

	// exists, zero → remove; boundaries after row 1 shift by −1
	mustSet(t, m, 1, 1, 0)
	require.Equal(t, []int{0, 0, 0, 0}, m.RowPtr())
	require.Equal(t, 0, m.NNZ())
}

// TestSetBelowThresholdRemoves checks |v| <= eps is treated as zero.
func TestSetBelowThresholdRemoves(t *testing.T) {
	m := mustZeros(t, 2, 2, sparse.WithEpsilon(1e-3))

	mustSet(t, m, 0, 1, 1e-4) // below threshold: not stored
	require.Equal(t, 0, m.NNZ())

	mustSet(t, m, 0, 1, 2)     // stored
	mustSet(t, m, 0, 1, -1e-3) // exactly eps in magnitude: removed
	require.Equal(t, 0, m.NNZ())
	require.Equal(t, 0.0, mustAt(t, m, 0, 1))
}

// TestSetInsertionOrder verifies entries keep insertion order within a row.
func TestSetInsertionOrder(t *testing.T) {
	m := mustZeros(t, 2, 4)
	mustSet(t, m, 0, 3, 1)
	mustSet(t, m, 0, 1, 2)
	mustSet(t, m, 1, 0, 3)
	mustSet(t, m, 0, 2, 4)

	require.Equal(t, []int{0, 3, 4}, m.RowPtr())
	require.Equal(t, []int{3, 1, 2, 0}, m.ColIdx()) // row 0 unsorted, in insertion order
	require.Equal(t, []float64{1, 2, 4, 3}, m.Values())
}

// TestSetNaNInfPolicy covers the finiteness policy.
func TestSetNaNInfPolicy(t *testing.T) {
	m := mustZeros(t, 2, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), sparse.ErrNaNInf)  // default rejects NaN
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), sparse.ErrNaNInf) // and +Inf
	require.Equal(t, 0, m.NNZ())                                   // untouched

	m = mustZeros(t, 2, 2, sparse.WithNoValidateNaNInf())
	mustSet(t, m, 0, 0, math.Inf(-1)) // stored
	require.Equal(t, 1, m.NNZ())
	mustSet(t, m, 0, 0, math.NaN()) // NaN counts as zero: removes the entry
	require.Equal(t, 0, m.NNZ())
}

// TestSetErrorPriority checks nil beats index, and index beats NaN/Inf.
func TestSetErrorPriority(t *testing.T) {
	var nilM *sparse.Matrix[float64]
	err := nilM.Set(-1, 0, math.NaN())
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	require.NotErrorIs(t, err, sparse.ErrOutOfRange)

	m := mustZeros(t, 2, 2)
	err = m.Set(-1, 0, math.NaN())
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	require.NotErrorIs(t, err, sparse.ErrNaNInf)
	err = m.Set(0, 5, math.Inf(1))
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	require.ErrorIs(t, m.Set(1, 1, math.Inf(-1)), sparse.ErrNaNInf)
}

// TestIntegerElements exercises the engine with an integer element type.
func TestIntegerElements(t *testing.T) {
	m, err := sparse.NewZeros[int](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 2, -4))
	require.NoError(t, m.Set(1, 0, 9))
	require.Equal(t, -4, mustAt(t, m, 0, 2))
	require.Equal(t, 2, m.NNZ())

	require.NoError(t, m.Set(0, 2, 0))
	require.Equal(t, 1, m.NNZ())
	require.NoError(t, m.Check())
}

// TestNewFromDense checks iterated assignment from a dense source.
func TestNewFromDense(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 2, 0},
		{3, 0, 4},
	})
	require.Equal(t, 3, m.NNZ())
	require.Equal(t, []int{0, 1, 3}, m.RowPtr())
	require.Equal(t, []int{1, 0, 2}, m.ColIdx())

	_, err := sparse.NewFromDense([][]float64{{1, 2}, {3}}, 2, 2) // ragged
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.NewFromDense([][]float64{{1, 2}}, 2, 2) // too few rows
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.NewFromDense([][]float64{{math.NaN()}}, 1, 1) // non-finite
	require.ErrorIs(t, err, sparse.ErrNaNInf)
}

// TestCloneIndependence ensures Clone does not share arrays.
func TestCloneIndependence(t *testing.T) {
	m := scenario3x3(t)
	c := m.Clone()
	require.True(t, m.Equal(c))

	mustSet(t, c, 0, 0, 9) // mutate the clone only
	require.Equal(t, 0.0, mustAt(t, m, 0, 0))
	require.False(t, m.Equal(c))
}

// TestTakeLeavesEmptySource checks the move semantics.
func TestTakeLeavesEmptySource(t *testing.T) {
	m := scenario3x3(t)
	want := m.Clone()

	moved := m.Take()
	require.True(t, moved.Equal(want)) // content moved intact
	require.Equal(t, 0, m.Rows())      // source is 0×0
	require.Equal(t, 0, m.Cols())
	require.Equal(t, []int{0}, m.RowPtr())
	require.NoError(t, m.Check()) // and still valid

	m.ExpandRow() // the emptied source remains usable
	m.ExpandCol()
	mustSet(t, m, 0, 0, 1)
}

// TestZeroValueMatrix verifies the zero value behaves as an empty 0×0 matrix.
func TestZeroValueMatrix(t *testing.T) {
	var m sparse.Matrix[float64]
	require.Equal(t, 0, m.NNZ())
	require.NoError(t, m.Check())

	m.ExpandRow()
	m.ExpandCol()
	require.NoError(t, m.Set(0, 0, 2))
	require.Equal(t, 2.0, mustAt(t, &m, 0, 0))
	require.Equal(t, sparse.DefaultEpsilon, m.Options().Epsilon())
}

// TestResetAndResetIdentity covers both reset flavors.
func TestResetAndResetIdentity(t *testing.T) {
	m := scenario3x3(t)

	m.Reset()
	require.Equal(t, 0, m.NNZ())
	require.Equal(t, 3, m.Rows()) // shape kept
	require.NoError(t, m.Check())

	mustSet(t, m, 2, 0, 4)
	m.ResetIdentity()
	id, err := sparse.NewIdentity[float64](3)
	require.NoError(t, err)
	require.True(t, m.Equal(id))

	r := mustZeros(t, 2, 3) // rectangular: diagonal over min(rows, cols)
	r.ResetIdentity()
	require.Equal(t, []int{0, 1, 2}, r.RowPtr())
	require.Equal(t, []int{0, 1}, r.ColIdx())
}

// TestRowAccessors covers Row, RowNNZ and Do.
func TestRowAccessors(t *testing.T) {
	m := scenario3x3(t)

	n, err := m.RowNNZ(1)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	cols, vals, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, cols)
	require.Equal(t, []float64{1, 1}, vals)

	cols[0] = 99 // copies: storage unaffected
	require.Equal(t, []int{0, 2}, m.ColIdx())

	_, _, err = m.Row(3)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.RowNNZ(-1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	var seen [][3]float64
	m.Do(func(i, j int, v float64) { seen = append(seen, [3]float64{float64(i), float64(j), v}) })
	require.Equal(t, [][3]float64{{1, 0, 1}, {1, 2, 1}}, seen)
}

// TestStringOutput checks the dense debug rendering.
func TestStringOutput(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 0}, {0, 4}})
	require.Equal(t, "[1, 0]\n[0, 4]\n", m.String())
}

// TestGetSetRoundTrip is a randomized property test: after every Set the
// invariants hold and At returns what a dense shadow copy predicts.
func TestGetSetRoundTrip(t *testing.T) {
	const r, c = 7, 9
	rng := rand.New(rand.NewSource(20240611))
	m := mustZeros(t, r, c)
	shadow := make([][]float64, r)
	for i := range shadow {
		shadow[i] = make([]float64, c)
	}

	for step := 0; step < 500; step++ {
		i, j := rng.Intn(r), rng.Intn(c)
		v := 0.0
		if rng.Intn(3) > 0 { // two thirds non-zero, one third removals
			v = float64(rng.Intn(19) - 9)
		}
		nnzBefore := m.NNZ()
		existed := shadow[i][j] != 0

		mustSet(t, m, i, j, v)
		shadow[i][j] = v

		switch {
		case existed && v == 0:
			require.Equal(t, nnzBefore-1, m.NNZ()) // removal decrements nnz by exactly one
		case !existed && v != 0:
			require.Equal(t, nnzBefore+1, m.NNZ()) // insertion increments by one
		default:
			require.Equal(t, nnzBefore, m.NNZ())
		}
		require.Equal(t, v, mustAt(t, m, i, j))
	}
	require.Equal(t, shadow, toDense(t, m))
}
