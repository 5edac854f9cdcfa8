// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels (optionally wrapped with
// context) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for option
// constructors receiving nonsensical parameters.

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("ctx: %w", ErrX); callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> NaN/Inf -> dimension mismatch -> structural violations.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column coordinate is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes: Add/Sub with
	// different shapes, Mul where a.Cols != b.Rows, MulVec where len(x) != a.Cols.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrInvalidOperation signals a structurally impossible request, such as
	// shrinking a matrix that has no rows or no columns left.
	ErrInvalidOperation = errors.New("sparse: invalid operation")

	// ErrNaNInf signals a NaN or ±Inf value was passed to Set while the
	// numeric policy requires finite values.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrParse indicates malformed text input for Decode/Load/UnmarshalText.
	ErrParse = errors.New("sparse: malformed matrix text")

	// ErrCorrupt indicates that the compressed-row arrays violate an invariant.
	ErrCorrupt = errors.New("sparse: corrupt compressed-row storage")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// errors.Is(err, ErrIndexOutOfBounds) and errors.Is(err, ErrOutOfRange) agree.
var ErrIndexOutOfBounds = ErrOutOfRange

// Operation tags used in error wrappers (no magic strings at call sites).
const (
	opAt          = "At"
	opSet         = "Set"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opScale       = "Scale"
	opDivide      = "Divide"
	opTranspose   = "Transpose"
	opShrinkRow   = "ShrinkRow"
	opShrinkCol   = "ShrinkCol"
	opNewZeros    = "NewZeros"
	opNewIdentity = "NewIdentity"
	opFromDense   = "NewFromDense"
	opDecode      = "Decode"
	opCheck       = "Check"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with the operation tag and the offending coordinates.
func cellErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", tag, row, col, err)
}
