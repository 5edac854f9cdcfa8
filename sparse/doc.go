// Package sparse provides a generic compressed-row (CSR) sparse matrix engine.
//
// What
//
//   - Matrix[T] stores only the non-zero entries of an R×C matrix in three
//     parallel arrays: row boundaries, column indices and values.
//   - Element access (At) and mutation (Set) keep every storage invariant:
//     writing a value with |v| <= eps removes the entry, writing a non-zero
//     value to an absent cell inserts it.
//   - Structural resize by one row or column (ExpandRow, ExpandCol,
//     ShrinkRow, ShrinkCol).
//   - Arithmetic: Add, Sub, Scale/Divide, reference Mul, MulVec, Transpose.
//   - A line-oriented text codec (Encode/Decode, Save/Load) and gonum interop
//     (AsGonum, FromGonum, ToDense).
//
// Why
//
//   - Memory proportional to the stored entries, not to R·C.
//   - A single matrix type usable as a numeric operand and as the adjacency
//     storage of package graph.
//
// Storage order
//
//	Entries inside a row keep insertion order; they are NOT sorted by column.
//	Equal is therefore structural: two matrices with the same logical values
//	but different Set histories may compare unequal. Use Normalize or
//	EqualValues for an order-independent comparison.
//
// Zero threshold
//
//	A value is numerically zero when |float64(v)| <= eps (DefaultEpsilon is
//	1e-16). Configure it per matrix with WithEpsilon. Results of arithmetic
//	inherit the policy of the left operand.
//
// Complexity
//
//   - At:  O(w) where w is the row width.
//   - Set: O(w) lookup plus O(nnz + R) when an entry is inserted or removed.
//   - Add/Sub: O(nnz(b)·(w + nnz)); MulVec/Transpose: O(R + C + nnz).
//   - Mul: reference product, O(R·C·K·w).
//
// Usage
//
//	m, err := sparse.NewZeros[float64](3, 3)
//	if err != nil {
//		// ErrInvalidDimensions
//	}
//	_ = m.Set(1, 0, 1)
//	_ = m.Set(1, 2, 1)
//	y, _ := sparse.MulVec(m, []float64{1, 1, 1}) // [0 2 0]
//
// Errors
//
//   - ErrOutOfRange (alias ErrIndexOutOfBounds): coordinate outside the shape.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrInvalidOperation: shrinking an empty dimension, dividing by zero.
//   - ErrInvalidDimensions, ErrNaNInf, ErrNilMatrix, ErrParse, ErrCorrupt.
//
// Concurrency
//
//	A Matrix is a plain value without locking. Concurrent readers are safe;
//	any mutation must be serialized by the caller.
package sparse
