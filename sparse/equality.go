// SPDX-License-Identifier: MIT

package sparse

import (
	"slices"
	"sort"
)

// Equal reports structural equality: same shape and element-wise equal
// rowPtr, colIdx and values arrays.
//
// Equality is insertion-order-sensitive. Two matrices holding the same logical
// values but built through different Set histories may compare unequal; call
// Normalize on both, or use EqualValues, for an order-independent comparison.
// Complexity: O(rows + nnz).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	// A zero-value matrix has a nil rowPtr; compare against the boundary it implies.
	if !slices.Equal(m.boundaries(), other.boundaries()) {
		return false
	}

	return slices.Equal(m.colIdx, other.colIdx) && slices.Equal(m.values, other.values)
}

// boundaries returns rowPtr without initializing a zero-value receiver.
func (m *Matrix[T]) boundaries() []int {
	if m.rowPtr == nil {
		return make([]int, m.rows+1)
	}

	return m.rowPtr
}

// EqualValues reports logical equality: same shape and the same value at
// every cell, regardless of per-row storage order.
// Complexity: O(rows + nnz·w).
func (m *Matrix[T]) EqualValues(other *Matrix[T]) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.values) != len(other.values) {
		return false
	}
	a, b := m.boundaries(), other.boundaries()
	var i, k, q int
	for i = 0; i < m.rows; i++ {
		if a[i+1]-a[i] != b[i+1]-b[i] {
			return false
		}
		for k = a[i]; k < a[i+1]; k++ {
			q = other.find(i, m.colIdx[k])
			if q < 0 || other.values[q] != m.values[k] {
				return false
			}
		}
	}

	return true
}

// Normalize sorts every row's entries by column index in place.
// Afterwards the storage order of m depends only on its logical content, so
// Equal agrees with EqualValues between normalized matrices.
// Complexity: O(nnz·log w).
func (m *Matrix[T]) Normalize() {
	m.lazyInit()
	for i := 0; i < m.rows; i++ {
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]
		if hi-lo < 2 {
			continue
		}
		sort.Sort(rowSorter[T]{cols: m.colIdx[lo:hi], vals: m.values[lo:hi]})
	}
}

// rowSorter orders one row slice by column, moving values alongside.
type rowSorter[T Number] struct {
	cols []int
	vals []T
}

func (s rowSorter[T]) Len() int           { return len(s.cols) }
func (s rowSorter[T]) Less(a, b int) bool { return s.cols[a] < s.cols[b] }
func (s rowSorter[T]) Swap(a, b int) {
	s.cols[a], s.cols[b] = s.cols[b], s.cols[a]
	s.vals[a], s.vals[b] = s.vals[b], s.vals[a]
}
