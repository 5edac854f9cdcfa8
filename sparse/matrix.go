// SPDX-License-Identifier: MIT

// Package sparse - compressed-row storage & invariant-preserving accessors.
//
// Purpose:
//   - Store only the non-zero entries of an R×C matrix in three parallel arrays
//     (rowPtr, colIdx, values) using the compressed-row (CSR) layout.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every mutation invariant-preserving: sorted row boundaries,
//     consistent parallel arrays, no stored value with |v| <= eps.
//
// Storage layout:
//   - rowPtr has rows+1 entries; row i owns colIdx/values[rowPtr[i]:rowPtr[i+1]].
//   - rowPtr[0] == 0 and rowPtr[rows] == nnz == len(colIdx) == len(values).
//   - Within a row, entries keep insertion order (NOT sorted by column); lookups
//     are linear scans of the row slice.
//
// Complexity quicksheet:
//   - At: O(row width); Set: O(row width) lookup + O(nnz + rows) for insert/remove
//     (array shift + rowPtr shift); Clone: O(rows + nnz).
//   - Callers assigning many entries one by one should expect O(n·nnz) aggregate cost.

package sparse

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an R×C matrix storing only its non-zero entries in compressed-row form.
//
// The zero value is an empty 0×0 matrix with the default numeric policy; it may
// be grown with ExpandRow/ExpandCol or filled with Decode. Prefer the
// constructors (NewZeros, NewIdentity, NewFromDense) to pick a shape and policy.
//
// A Matrix is not safe for concurrent mutation; callers serialize access.
type Matrix[T Number] struct {
	rows, cols int     // dimensions (>= 0), changed only by explicit resize
	rowPtr     []int   // len rows+1, non-decreasing, rowPtr[0] == 0
	colIdx     []int   // len nnz, column of each stored entry
	values     []T     // len nnz, value of each stored entry, |v| > eps
	opts       Options // numeric policy resolved at construction
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// newMatrix allocates an all-zero rows×cols matrix with a resolved policy.
// Callers guarantee rows, cols >= 0.
func newMatrix[T Number](rows, cols int, opts Options) *Matrix[T] {
	return &Matrix[T]{
		rows:   rows,
		cols:   cols,
		rowPtr: make([]int, rows+1), // make() zero-fills: every row starts empty
		opts:   opts,
	}
}

// NewZeros creates an all-zero rows×cols matrix.
// Implementation:
//   - Stage 1: validate rows >= 0 && cols >= 0; else ErrInvalidDimensions.
//   - Stage 2: allocate rowPtr (rows+1 zeros) and leave colIdx/values empty.
//
// Behavior highlights:
//   - 0×N and N×0 shapes are legal: structural shrinks can reach them, so
//     constructors accept them too.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(rows), Space O(rows).
func NewZeros[T Number](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewZeros, ErrInvalidDimensions)
	}

	return newMatrix[T](rows, cols, gatherOptions(opts...)), nil
}

// NewIdentity returns the n×n identity: one unit entry per row on the diagonal.
// Implementation:
//   - Stage 1: validate n >= 0.
//   - Stage 2: write rowPtr[i] = i, colIdx[i] = i, values[i] = 1 directly
//     (no per-entry shifting).
//
// Notes:
//   - If the policy's eps is >= 1 the unit value is itself "zero" and the
//     result is the empty n×n matrix.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewIdentity[T Number](n int, opts ...Option) (*Matrix[T], error) {
	if n < 0 {
		return nil, matrixErrorf(opNewIdentity, ErrInvalidDimensions)
	}
	m := newMatrix[T](n, n, gatherOptions(opts...))
	m.fillDiagonal()

	return m, nil
}

// NewFromDense builds a rows×cols matrix from a dense row-major source by
// iterated assignment: Set(i, j, data[i][j]) for i→j in fixed order.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//   - ErrDimensionMismatch (len(data) != rows or a row with len != cols).
//   - ErrNaNInf (non-finite value under the default policy).
//
// Complexity:
//   - Time O(rows·cols·w) where w is the row width reached so far.
func NewFromDense[T Number](data [][]T, rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opFromDense, ErrInvalidDimensions)
	}
	if len(data) != rows {
		return nil, matrixErrorf(opFromDense, fmt.Errorf("rows: got %d, want %d: %w", len(data), rows, ErrDimensionMismatch))
	}
	m := newMatrix[T](rows, cols, gatherOptions(opts...))
	var i, j int
	for i = 0; i < rows; i++ {
		if len(data[i]) != cols {
			return nil, matrixErrorf(opFromDense, fmt.Errorf("row %d: got %d columns, want %d: %w", i, len(data[i]), cols, ErrDimensionMismatch))
		}
		for j = 0; j < cols; j++ {
			if err := m.Set(i, j, data[i][j]); err != nil {
				return nil, matrixErrorf(opFromDense, err)
			}
		}
	}

	return m, nil
}

// lazyInit turns a zero-value Matrix into a valid empty 0×0 matrix.
func (m *Matrix[T]) lazyInit() {
	if m.rowPtr == nil {
		m.rowPtr = make([]int, m.rows+1)
		m.opts = gatherOptions()
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored entries.
func (m *Matrix[T]) NNZ() int { return len(m.values) }

// Options returns the numeric policy the matrix was constructed with.
func (m *Matrix[T]) Options() Options { return m.opts }

// isZero reports whether v is numerically zero under the matrix policy.
// Written as !(|v| > eps) so that NaN counts as zero.
func (m *Matrix[T]) isZero(v T) bool {
	return !(magnitude(v) > m.opts.eps)
}

// checkIndex validates 0 ≤ i < rows and 0 ≤ j < cols.
func (m *Matrix[T]) checkIndex(tag string, i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return cellErrorf(tag, i, j, ErrOutOfRange)
	}

	return nil
}

// find returns the storage offset of (i, j) or -1. Caller validated i.
// Linear scan of the row slice; rows are unsorted.
func (m *Matrix[T]) find(i, j int) int {
	end := m.rowPtr[i+1]
	for k := m.rowPtr[i]; k < end; k++ {
		if m.colIdx[k] == j {
			return k
		}
	}

	return -1
}

// get returns the value at a validated (i, j), or zero.
func (m *Matrix[T]) get(i, j int) T {
	if k := m.find(i, j); k >= 0 {
		return m.values[k]
	}
	var zero T

	return zero
}

// At retrieves the element at (i, j).
// Implementation:
//   - Stage 1: bounds check; ErrOutOfRange on violation.
//   - Stage 2: scan colIdx[rowPtr[i]:rowPtr[i+1]] for j.
//   - Stage 3: return the stored value or the additive identity.
//
// Complexity:
//   - Time O(row width), Space O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	var zero T
	if m == nil {
		return zero, cellErrorf(opAt, i, j, ErrNilMatrix)
	}
	if err := m.checkIndex(opAt, i, j); err != nil {
		return zero, err
	}

	return m.get(i, j), nil
}

// Set assigns v at (i, j), maintaining every storage invariant.
// Implementation:
//   - Stage 1: validate coordinates and (policy permitting) finiteness; nothing
//     is touched when validation fails.
//   - Stage 2: dispatch on (entry exists?, |v| > eps?):
//     1. exists, non-zero  → overwrite in place; structure unchanged;
//     2. exists, zero      → delete the slot, rowPtr[r] -= 1 for every r > i;
//     3. absent, non-zero  → insert at rowPtr[i+1], rowPtr[r] += 1 for every r > i;
//     4. absent, zero      → no-op.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (wrapped with coordinates).
//
// Complexity:
//   - Case 1/4: O(row width). Case 2/3: O(nnz + rows).
func (m *Matrix[T]) Set(i, j int, v T) error {
	if m == nil {
		return cellErrorf(opSet, i, j, ErrNilMatrix)
	}
	if err := m.checkIndex(opSet, i, j); err != nil {
		return err
	}
	if m.opts.validateNaNInf && isNonFinite(v) {
		return cellErrorf(opSet, i, j, ErrNaNInf)
	}
	m.assign(i, j, v)

	return nil
}

// assign is the unchecked mutator shared by Set and the arithmetic kernels.
func (m *Matrix[T]) assign(i, j int, v T) {
	k := m.find(i, j)
	zero := m.isZero(v)
	switch {
	case k >= 0 && !zero:
		m.values[k] = v
	case k >= 0:
		m.removeAt(i, k)
	case !zero:
		m.insertAt(i, j, v)
	}
}

// removeAt deletes storage slot k belonging to row i.
func (m *Matrix[T]) removeAt(i, k int) {
	m.colIdx = slices.Delete(m.colIdx, k, k+1)
	m.values = slices.Delete(m.values, k, k+1)
	for r := i + 1; r <= m.rows; r++ {
		m.rowPtr[r]--
	}
}

// insertAt appends (j, v) at the end of row i's slice.
func (m *Matrix[T]) insertAt(i, j int, v T) {
	k := m.rowPtr[i+1]
	m.colIdx = slices.Insert(m.colIdx, k, j)
	m.values = slices.Insert(m.values, k, v)
	for r := i + 1; r <= m.rows; r++ {
		m.rowPtr[r]++
	}
}

// fillDiagonal rebuilds storage as the unit diagonal over min(rows, cols).
func (m *Matrix[T]) fillDiagonal() {
	var one T = 1
	n := min(m.rows, m.cols)
	if m.isZero(one) {
		n = 0
	}
	m.colIdx = make([]int, n)
	m.values = make([]T, n)
	for i := 0; i <= m.rows; i++ {
		m.rowPtr[i] = min(i, n)
	}
	for i := 0; i < n; i++ {
		m.colIdx[i] = i
		m.values[i] = one
	}
}

// Reset drops every stored entry, keeping the shape and policy.
// Complexity: O(rows).
func (m *Matrix[T]) Reset() {
	m.lazyInit()
	clear(m.rowPtr)
	m.colIdx = nil
	m.values = nil
}

// ResetIdentity replaces the content with the unit diagonal over min(rows, cols).
// Complexity: O(rows).
func (m *Matrix[T]) ResetIdentity() {
	m.lazyInit()
	m.fillDiagonal()
}

// Clone returns a deep copy: the three arrays are independent of m.
// Complexity: O(rows + nnz).
func (m *Matrix[T]) Clone() *Matrix[T] {
	m.lazyInit()

	return &Matrix[T]{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: slices.Clone(m.rowPtr),
		colIdx: slices.Clone(m.colIdx),
		values: slices.Clone(m.values),
		opts:   m.opts,
	}
}

// Take transfers ownership of m's arrays to a new Matrix without copying.
// m is left a valid empty 0×0 matrix that keeps its policy.
// Complexity: O(1).
func (m *Matrix[T]) Take() *Matrix[T] {
	m.lazyInit()
	out := &Matrix[T]{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: m.rowPtr,
		colIdx: m.colIdx,
		values: m.values,
		opts:   m.opts,
	}
	m.rows, m.cols = 0, 0
	m.rowPtr = []int{0}
	m.colIdx = nil
	m.values = nil

	return out
}

// RowNNZ returns the number of stored entries in row i.
func (m *Matrix[T]) RowNNZ(i int) (int, error) {
	if i < 0 || i >= m.rows {
		return 0, cellErrorf("RowNNZ", i, 0, ErrOutOfRange)
	}

	return m.rowPtr[i+1] - m.rowPtr[i], nil
}

// Row returns copies of row i's column indices and values in storage order.
func (m *Matrix[T]) Row(i int) ([]int, []T, error) {
	if i < 0 || i >= m.rows {
		return nil, nil, cellErrorf("Row", i, 0, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return slices.Clone(m.colIdx[lo:hi]), slices.Clone(m.values[lo:hi]), nil
}

// Do calls fn for every stored entry, row by row, in storage order.
// fn must not mutate m.
func (m *Matrix[T]) Do(fn func(i, j int, v T)) {
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			fn(i, m.colIdx[k], m.values[k])
		}
	}
}

// RowPtr returns a copy of the row boundary array (len rows+1).
func (m *Matrix[T]) RowPtr() []int {
	m.lazyInit()

	return slices.Clone(m.rowPtr)
}

// ColIdx returns a copy of the column index array (len nnz).
func (m *Matrix[T]) ColIdx() []int { return slices.Clone(m.colIdx) }

// Values returns a copy of the value array (len nnz).
func (m *Matrix[T]) Values() []T { return slices.Clone(m.values) }

// Check re-validates every storage invariant and reports the first violation.
// Implementation:
//   - Stage 1: array lengths and rowPtr endpoints.
//   - Stage 2: rowPtr monotonicity.
//   - Stage 3: per entry: column range, per-row uniqueness, |v| > eps.
//
// Errors:
//   - ErrCorrupt wrapped with a description of the violation.
//
// Complexity:
//   - Time O(rows + nnz·w) where w is the widest row; Space O(1).
func (m *Matrix[T]) Check() error {
	if m == nil {
		return matrixErrorf(opCheck, ErrNilMatrix)
	}
	m.lazyInit()
	corrupt := func(format string, args ...any) error {
		return matrixErrorf(opCheck, fmt.Errorf("%w: "+format, append([]any{ErrCorrupt}, args...)...))
	}
	if len(m.rowPtr) != m.rows+1 {
		return corrupt("len(rowPtr)=%d, want %d", len(m.rowPtr), m.rows+1)
	}
	if m.rowPtr[0] != 0 {
		return corrupt("rowPtr[0]=%d", m.rowPtr[0])
	}
	if m.rowPtr[m.rows] != len(m.colIdx) || len(m.colIdx) != len(m.values) {
		return corrupt("rowPtr[%d]=%d, len(colIdx)=%d, len(values)=%d",
			m.rows, m.rowPtr[m.rows], len(m.colIdx), len(m.values))
	}
	var i, k, q int
	for i = 0; i < m.rows; i++ {
		if m.rowPtr[i] > m.rowPtr[i+1] {
			return corrupt("rowPtr decreases at row %d", i)
		}
	}
	for i = 0; i < m.rows; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if m.colIdx[k] < 0 || m.colIdx[k] >= m.cols {
				return corrupt("row %d: column %d outside [0,%d)", i, m.colIdx[k], m.cols)
			}
			if m.isZero(m.values[k]) {
				return corrupt("row %d: stored zero at column %d", i, m.colIdx[k])
			}
			for q = m.rowPtr[i]; q < k; q++ {
				if m.colIdx[q] == m.colIdx[k] {
					return corrupt("row %d: duplicate column %d", i, m.colIdx[k])
				}
			}
		}
	}

	return nil
}

// String renders the matrix densely, one bracketed row per line.
// Intended for debugging small matrices. Complexity: O(rows·cols·w).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, "%v", m.get(i, j))
			if j < m.cols-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
