// SPDX-License-Identifier: MIT

// Package sparse - gonum interop.
//
// AsGonum exposes a Matrix as a read-only gonum mat.Matrix so that the whole
// gonum ecosystem (mat.Formatted, mat.Equal, dense products) can consume it
// without densifying. FromGonum and ToDense convert in the other directions.

package sparse

import "gonum.org/v1/gonum/mat"

// Compile-time conformance of the view.
var (
	_ mat.Matrix      = GonumView[float64]{}
	_ mat.NonZeroDoer = GonumView[float64]{}
)

// GonumView adapts *Matrix[T] to mat.Matrix. It shares storage with the
// wrapped matrix: mutations through the matrix are visible through the view.
type GonumView[T Number] struct {
	m *Matrix[T]
}

// AsGonum returns a read-only gonum view of m. A nil m yields a 0×0 view.
func AsGonum[T Number](m *Matrix[T]) GonumView[T] {
	if m == nil {
		m = &Matrix[T]{}
	}

	return GonumView[T]{m: m}
}

// Dims returns the shape of the underlying matrix.
func (v GonumView[T]) Dims() (r, c int) { return v.m.rows, v.m.cols }

// At returns the value at (i, j) as float64.
// It panics with mat.ErrIndexOutOfRange on invalid coordinates, as gonum
// matrices do.
func (v GonumView[T]) At(i, j int) float64 {
	if v.m.checkIndex(opAt, i, j) != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return float64(v.m.get(i, j))
}

// T returns the implicit transpose of the view.
func (v GonumView[T]) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// DoNonZero calls fn for every stored entry in storage order.
func (v GonumView[T]) DoNonZero(fn func(i, j int, x float64)) {
	v.m.Do(func(i, j int, x T) { fn(i, j, float64(x)) })
}

// FromGonum builds a Matrix from any gonum matrix by iterated assignment in
// row-major order. Values are converted with T(v); cells with |v| <= eps
// are not stored.
// Errors: ErrNaNInf (non-finite source value under the default policy).
// Complexity: O(r·c·w).
func FromGonum[T Number](src mat.Matrix, opts ...Option) (*Matrix[T], error) {
	r, c := src.Dims()
	m := newMatrix[T](r, c, gatherOptions(opts...))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := m.Set(i, j, T(src.At(i, j))); err != nil {
				return nil, matrixErrorf("FromGonum", err)
			}
		}
	}

	return m, nil
}

// ToDense materializes m as a gonum *mat.Dense. Shapes with a zero
// dimension yield an empty Dense (gonum cannot allocate them).
// Complexity: O(r·c + nnz).
func ToDense[T Number](m *Matrix[T]) *mat.Dense {
	if m == nil || m.rows == 0 || m.cols == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	m.Do(func(i, j int, v T) { d.Set(i, j, float64(v)) })

	return d
}
