// SPDX-License-Identifier: MIT
// Package sparse - arithmetic on compressed-row matrices.
//
// Purpose:
//   - Addition, subtraction, scaling, matrix and matrix-vector products built
//     on top of the accessor/mutator contract, so every result satisfies the
//     same storage invariants as a matrix mutated through Set.
//
// Determinism & Policy:
//   - Fixed loop orders; results inherit the numeric policy of the left operand.
//   - Validation happens before any allocation or mutation: a failed call
//     leaves every operand untouched.
//   - Arithmetic results are written through the threshold rule but are not
//     re-checked for NaN/Inf (overflow is the caller's concern).

package sparse

import "fmt"

// addSub computes a ± b. The result starts as a copy of a; only cells where b
// stores an entry are touched, so cells zero in both operands stay implicit.
// A cell driven to |v| <= eps is removed by the mutator.
func addSub[T Number](a, b *Matrix[T], negate bool, opTag string) (*Matrix[T], error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := a.Clone()
	var (
		i, k int
		j    int
		bv   T
	)
	for i = 0; i < b.rows; i++ {
		for k = b.rowPtr[i]; k < b.rowPtr[i+1]; k++ {
			j, bv = b.colIdx[k], b.values[k]
			if negate {
				res.assign(i, j, res.get(i, j)-bv)
			} else {
				res.assign(i, j, res.get(i, j)+bv)
			}
		}
	}

	return res, nil
}

// Add returns a + b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (different shapes).
// Complexity: O(nnz(a) + nnz(b)·(w + nnz)) where w is the row width.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns a − b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (different shapes).
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, true, opSub) }

// Scale multiplies every stored value by alpha in place.
// Entries whose scaled magnitude falls to <= eps are pruned in a single
// compaction pass, so Scale(0) leaves an empty matrix of the same shape.
// Like every arithmetic result, scaled values skip the NaN/Inf policy:
// Scale(±Inf) stores ±Inf even under WithValidateNaNInf, and Scale(NaN)
// prunes every entry (NaN never exceeds eps).
// Complexity: O(rows + nnz).
func (m *Matrix[T]) Scale(alpha T) {
	m.lazyInit()
	for k := range m.values {
		m.values[k] *= alpha
	}
	m.prune()
}

// Divide divides every stored value by alpha in place, pruning entries that
// fall to <= eps.
// Errors: ErrInvalidOperation when alpha == 0 (nothing is modified).
// Complexity: O(rows + nnz).
func (m *Matrix[T]) Divide(alpha T) error {
	if alpha == 0 {
		return matrixErrorf(opDivide, fmt.Errorf("zero divisor: %w", ErrInvalidOperation))
	}
	m.lazyInit()
	for k := range m.values {
		m.values[k] /= alpha
	}
	m.prune()

	return nil
}

// prune removes stored entries that no longer exceed the threshold.
func (m *Matrix[T]) prune() {
	for _, v := range m.values {
		if m.isZero(v) {
			m.compact(func(_ int, v T) bool { return !m.isZero(v) })
			return
		}
	}
}

// Scaled returns alpha·a as a new matrix; a is not modified.
func Scaled[T Number](a *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := a.Clone()
	res.Scale(alpha)

	return res, nil
}

// Divided returns a/alpha as a new matrix; a is not modified.
// Errors: ErrNilMatrix, ErrInvalidOperation (alpha == 0).
func Divided[T Number](a *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	if alpha == 0 {
		return nil, matrixErrorf(opDivide, fmt.Errorf("zero divisor: %w", ErrInvalidOperation))
	}
	res := a.Clone()
	_ = res.Divide(alpha) // alpha validated above

	return res, nil
}

// Mul performs the reference matrix product C = A × B.
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: textbook i→k→j triple loop: C(i,k) = Σ_j A(i,j)·B(j,k),
//     written through the mutator so zero sums are never stored.
//
// Behavior highlights:
//   - Probes every (i,k) pair through the general accessor: the reference
//     product, not a sparsity-exploiting kernel.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ).
//
// Complexity:
//   - Time O(rows·cols·inner·w), Space O(nnz(C)).
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := newMatrix[T](a.rows, b.cols, a.opts)
	var (
		i, j, k int
		av, sum T
	)
	for i = 0; i < a.rows; i++ {
		for k = 0; k < b.cols; k++ {
			sum = 0
			for j = 0; j < a.cols; j++ {
				av = a.get(i, j)
				if av == 0 {
					continue // skip implicit zeros
				}
				sum += av * b.get(j, k)
			}
			res.assign(i, k, sum)
		}
	}

	return res, nil
}

// MulVec computes y = A·x as a dense vector of exactly A.Rows() entries;
// y[i] is the dot product of row i's stored entries with x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != A.Cols()).
// Complexity: O(rows + nnz).
func MulVec[T Number](a *Matrix[T], x []T) ([]T, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(len(x), a.cols); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	y := make([]T, a.rows)
	var (
		i, k int
		acc  T
	)
	for i = 0; i < a.rows; i++ {
		acc = 0
		for k = a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			acc += a.values[k] * x[a.colIdx[k]]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns Aᵀ in compressed-row form.
// Implementation:
//   - Stage 1: count entries per column of A → row boundaries of Aᵀ.
//   - Stage 2: scatter entries row by row; each row of Aᵀ ends up ordered by
//     the source row index.
//
// Complexity: O(rows + cols + nnz).
func Transpose[T Number](a *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	a.lazyInit()

	nnz := len(a.values)
	res := newMatrix[T](a.cols, a.rows, a.opts)
	res.colIdx = make([]int, nnz)
	res.values = make([]T, nnz)
	for _, j := range a.colIdx {
		res.rowPtr[j+1]++
	}
	for r := 0; r < res.rows; r++ {
		res.rowPtr[r+1] += res.rowPtr[r]
	}

	next := make([]int, res.rows) // write cursor per row of the result
	copy(next, res.rowPtr[:res.rows])
	var i, k, j, w int
	for i = 0; i < a.rows; i++ {
		for k = a.rowPtr[i]; k < a.rowPtr[i+1]; k++ {
			j = a.colIdx[k]
			w = next[j]
			res.colIdx[w] = i
			res.values[w] = a.values[k]
			next[j]++
		}
	}

	return res, nil
}
