// SPDX-License-Identifier: MIT

// Package sparse: element constraint and capability interfaces.
// This file intentionally contains ONLY the type surface shared by the engine,
// the adjacency wrapper (package graph) and the binding layer (cmd/lvsparse).
package sparse

import "math"

// Number is the set of element types the engine can store.
// Every member supports +, −, × and has the zero value as additive identity;
// absolute value is taken through a float64 conversion.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Shape is the dimension query capability.
type Shape interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int
	// Cols returns the number of columns. Complexity: O(1).
	Cols() int
}

// Accessor is element access by a (row, column) coordinate pair.
type Accessor[T Number] interface {
	Shape

	// At returns the value at (i, j) or the zero value when nothing is stored.
	// Returns ErrOutOfRange for invalid coordinates.
	At(i, j int) (T, error)

	// Set assigns v at (i, j), inserting or removing storage as v crosses
	// the zero threshold. Returns ErrOutOfRange for invalid coordinates.
	Set(i, j int, v T) error
}

// Resizer is the structural grow/shrink capability.
type Resizer interface {
	ExpandRow()
	ExpandCol()
	ShrinkRow() error
	ShrinkCol() error
}

// Interface is the full capability set exposed to bindings:
// dimension query, element access and structural resize.
type Interface[T Number] interface {
	Accessor[T]
	Resizer
}

// Compile-time conformance.
var (
	_ Interface[float64] = (*Matrix[float64])(nil)
	_ Interface[int]     = (*Matrix[int])(nil)
)

// magnitude returns |v| as float64.
func magnitude[T Number](v T) float64 {
	return math.Abs(float64(v))
}

// isNonFinite reports NaN/±Inf; always false for integer element types.
func isNonFinite[T Number](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// isIntegral reports whether T is an integer type (1/2 truncates to 0).
func isIntegral[T Number]() bool {
	var one T = 1

	return one/2 == 0
}
