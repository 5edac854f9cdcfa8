// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single source of truth for shape checks used by the kernels.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add the operation tag on top and callers still match with errors.Is.
//
// Note:
//  - Validators operate on the Shape capability, so the adjacency wrapper and
//    any other binding can reuse them.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures a and b have equal dimensions (Add/Sub).
// Assumes a and b are non-nil. Complexity: O(1).
func ValidateSameShape(a, b Shape) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() (matrix product).
// Assumes a and b are non-nil. Complexity: O(1).
func ValidateMulCompatible(a, b Shape) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures a vector of length n matches the required size want.
func ValidateVecLen(n, want int) error {
	if n != want {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("got %d, want %d: %w", n, want, ErrDimensionMismatch))
	}

	return nil
}

// validateNotNil rejects nil operands before any shape is read.
func validateNotNil[T Number](ms ...*Matrix[T]) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}
