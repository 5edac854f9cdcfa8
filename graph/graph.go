// SPDX-License-Identifier: MIT

// Package graph - adjacency wrapper over a square sparse matrix.
//
// Purpose:
//   - Expose a dim×dim sparse matrix as a graph of dim nodes: the stored
//     entry (u, v) is the weight of the directed edge u→v.
//   - Keep node count and matrix shape in lock-step: AddNode grows both
//     dimensions, RemoveNode shrinks both.
//
// Ownership:
//   - A Graph owns exactly one *sparse.Matrix and is its sole holder. Matrix
//     returns a deep copy, so callers can never break the square invariant.

package graph

import (
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Graph is a weighted directed graph stored as a square sparse adjacency matrix.
//
// The zero value is an empty graph with 0 nodes.
// A Graph is not safe for concurrent mutation.
type Graph[T sparse.Number] struct {
	adj sparse.Matrix[T]
}

// Compile-time conformance: element access is the matrix accessor surface.
// Resize goes through AddNode/RemoveNode only, so the matrix stays square.
var (
	_ sparse.Accessor[float64] = (*Graph[float64])(nil)
	_ sparse.Accessor[int]     = (*Graph[int])(nil)
)

// New creates a graph with dim nodes and no edges, or with a unit self-loop
// on every node when identity is true.
// Errors: ErrInvalidDimension (dim < 0).
// Complexity: O(dim).
func New[T sparse.Number](dim int, identity bool, opts ...sparse.Option) (*Graph[T], error) {
	if dim < 0 {
		return nil, fmt.Errorf("graph.New(%d): %w", dim, ErrInvalidDimension)
	}
	var (
		m   *sparse.Matrix[T]
		err error
	)
	if identity {
		m, err = sparse.NewIdentity[T](dim, opts...)
	} else {
		m, err = sparse.NewZeros[T](dim, dim, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("graph.New(%d): %w", dim, err)
	}

	return &Graph[T]{adj: *m.Take()}, nil
}

// FromDense creates a graph from a dim×dim dense adjacency source.
// Errors: ErrInvalidDimension, sparse.ErrDimensionMismatch (non-square source).
func FromDense[T sparse.Number](data [][]T, dim int, opts ...sparse.Option) (*Graph[T], error) {
	if dim < 0 {
		return nil, fmt.Errorf("graph.FromDense(%d): %w", dim, ErrInvalidDimension)
	}
	m, err := sparse.NewFromDense(data, dim, dim, opts...)
	if err != nil {
		return nil, fmt.Errorf("graph.FromDense(%d): %w", dim, err)
	}

	return &Graph[T]{adj: *m.Take()}, nil
}

// Dim returns the node count (rows == cols == dim).
func (g *Graph[T]) Dim() int { return g.adj.Rows() }

// Rows returns the node count.
func (g *Graph[T]) Rows() int { return g.adj.Rows() }

// Cols returns the node count.
func (g *Graph[T]) Cols() int { return g.adj.Cols() }

// At returns the weight of edge u→v, or zero when absent.
func (g *Graph[T]) At(u, v int) (T, error) { return g.adj.At(u, v) }

// Set writes the weight of edge u→v; a zero weight removes the edge.
func (g *Graph[T]) Set(u, v int, w T) error { return g.adj.Set(u, v, w) }

// AddNode appends an isolated node with index Dim().
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode() {
	g.adj.ExpandRow()
	g.adj.ExpandCol()
}

// RemoveNode deletes the node with the highest index together with every
// edge that touches it.
// Errors: ErrEmptyGraph when the graph has no nodes (nothing is modified).
// Complexity: O(dim + nnz).
func (g *Graph[T]) RemoveNode() error {
	if g.Dim() == 0 {
		return fmt.Errorf("graph.RemoveNode: %w", ErrEmptyGraph)
	}
	// Both shrinks are valid once dim > 0.
	if err := g.adj.ShrinkRow(); err != nil {
		return err
	}

	return g.adj.ShrinkCol()
}

// Reset removes every edge. With identity, a unit self-loop is added on
// every node.
func (g *Graph[T]) Reset(identity bool) {
	if identity {
		g.adj.ResetIdentity()
		return
	}
	g.adj.Reset()
}

// Equal reports structural equality of the adjacency matrices.
func (g *Graph[T]) Equal(other *Graph[T]) bool {
	if g == nil || other == nil {
		return g == other
	}

	return g.adj.Equal(&other.adj)
}

// Clone returns an independent deep copy.
func (g *Graph[T]) Clone() *Graph[T] {
	return &Graph[T]{adj: *g.adj.Clone()}
}

// Matrix returns a deep copy of the adjacency matrix.
func (g *Graph[T]) Matrix() *sparse.Matrix[T] { return g.adj.Clone() }

// Encode writes the adjacency matrix in the sparse text format.
func (g *Graph[T]) Encode(w io.Writer) error { return g.adj.Encode(w) }

// Decode replaces the graph with the one read from r.
// Errors: ErrNotSquare when the stored matrix is not square; g is unchanged
// on any error.
func (g *Graph[T]) Decode(r io.Reader) error {
	next := g.adj.Clone()
	if err := next.Decode(r); err != nil {
		return err
	}
	if next.Rows() != next.Cols() {
		return fmt.Errorf("graph.Decode: %d×%d: %w", next.Rows(), next.Cols(), ErrNotSquare)
	}
	g.adj = *next.Take()

	return nil
}

// Save writes the graph to the file at path.
func (g *Graph[T]) Save(path string) error { return g.adj.Save(path) }

// Load replaces the graph with the one stored at path.
func (g *Graph[T]) Load(path string) error {
	m := g.adj.Clone()
	if err := m.Load(path); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("graph.Load(%q): %d×%d: %w", path, m.Rows(), m.Cols(), ErrNotSquare)
	}
	g.adj = *m.Take()

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (g *Graph[T]) MarshalText() ([]byte, error) { return g.adj.MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler with the Decode rules.
func (g *Graph[T]) UnmarshalText(text []byte) error {
	next := g.adj.Clone()
	if err := next.UnmarshalText(text); err != nil {
		return err
	}
	if next.Rows() != next.Cols() {
		return fmt.Errorf("graph.UnmarshalText: %d×%d: %w", next.Rows(), next.Cols(), ErrNotSquare)
	}
	g.adj = *next.Take()

	return nil
}

// EdgeCount returns the number of stored edges (self-loops included).
func (g *Graph[T]) EdgeCount() int { return g.adj.NNZ() }

// Neighbors returns the targets of u's outgoing edges in ascending order.
// Errors: ErrNodeOutOfRange.
// Complexity: O(w log w) where w is u's out-degree.
func (g *Graph[T]) Neighbors(u int) ([]int, error) {
	cols, _, err := g.adj.Row(u)
	if err != nil {
		return nil, fmt.Errorf("graph.Neighbors(%d): %w", u, ErrNodeOutOfRange)
	}
	slices.Sort(cols)

	return cols, nil
}

// OutDegree returns the number of outgoing edges of u.
// Errors: ErrNodeOutOfRange.
func (g *Graph[T]) OutDegree(u int) (int, error) {
	n, err := g.adj.RowNNZ(u)
	if err != nil {
		return 0, fmt.Errorf("graph.OutDegree(%d): %w", u, ErrNodeOutOfRange)
	}

	return n, nil
}

// String renders the adjacency matrix densely.
func (g *Graph[T]) String() string { return g.adj.String() }
