// SPDX-License-Identifier: MIT

// Package sparse - structural resize.
//
// Grow/shrink the matrix by one row or column while preserving every entry
// that is still inside the new shape. Shrinks fail with ErrInvalidOperation on
// an empty dimension and touch nothing in that case.

package sparse

// ExpandRow appends an empty row: rows += 1 and a new boundary equal to nnz.
// Complexity: O(1) amortized.
func (m *Matrix[T]) ExpandRow() {
	m.lazyInit()
	m.rowPtr = append(m.rowPtr, len(m.values))
	m.rows++
}

// ExpandCol appends an empty column. No array changes: nothing can be stored
// in a column that did not exist. Complexity: O(1).
func (m *Matrix[T]) ExpandCol() {
	m.lazyInit()
	m.cols++
}

// ShrinkRow removes the last row together with its stored entries.
// Errors: ErrInvalidOperation when rows == 0.
// Complexity: O(1).
func (m *Matrix[T]) ShrinkRow() error {
	m.lazyInit()
	if m.rows == 0 {
		return matrixErrorf(opShrinkRow, ErrInvalidOperation)
	}
	start := m.rowPtr[m.rows-1]
	m.colIdx = m.colIdx[:start]
	m.values = m.values[:start]
	m.rowPtr = m.rowPtr[:m.rows]
	m.rows--

	return nil
}

// ShrinkCol removes the last column: every entry with column cols-1 is dropped
// from every row.
// Implementation:
//   - Single filtering pass over the arrays, rebuilding rowPtr from the
//     retained counts (no repeated single-entry removal).
//
// Errors: ErrInvalidOperation when cols == 0.
// Complexity: O(rows + nnz).
func (m *Matrix[T]) ShrinkCol() error {
	m.lazyInit()
	if m.cols == 0 {
		return matrixErrorf(opShrinkCol, ErrInvalidOperation)
	}
	last := m.cols - 1
	m.compact(func(j int, _ T) bool { return j != last })
	m.cols--

	return nil
}

// compact keeps only the entries for which keep returns true, preserving
// their relative order, and rebuilds rowPtr in the same pass.
// The write cursor never overtakes the read cursor, so the pass is in place.
func (m *Matrix[T]) compact(keep func(j int, v T) bool) {
	var (
		w     int // write cursor
		k     int // read cursor
		start int // old rowPtr[r], saved before rowPtr[r] is overwritten
		end   int // old rowPtr[r+1]
	)
	for r := 0; r < m.rows; r++ {
		end = m.rowPtr[r+1]
		m.rowPtr[r] = w
		for k = start; k < end; k++ {
			if !keep(m.colIdx[k], m.values[k]) {
				continue
			}
			m.colIdx[w] = m.colIdx[k]
			m.values[w] = m.values[k]
			w++
		}
		start = end
	}
	m.rowPtr[m.rows] = w
	m.colIdx = m.colIdx[:w]
	m.values = m.values[:w]
}
