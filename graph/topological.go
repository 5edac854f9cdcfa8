// SPDX-License-Identifier: MIT

package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
)

// ErrCycleDetected is returned by TopologicalSort when the graph has a
// directed cycle. Self-loops count as cycles.
var ErrCycleDetected = errors.New("graph: cycle detected")

// DFS colors.
const (
	white = iota
	gray
	black
)

// topoSorter carries the state of one depth-first topological sort.
type topoSorter[T sparse.Number] struct {
	graph *Graph[T]
	ctx   context.Context
	state []int
	order []int
}

// TopologicalSort returns the nodes of g so that every stored edge u→v has
// u before v. Roots are tried in ascending index order and neighbors are
// visited ascending, so the result is deterministic.
// Returns ErrGraphNil, ErrCycleDetected or ctx.Err(). A nil ctx means
// context.Background().
// Complexity: O(V + E log d).
func TopologicalSort[T sparse.Number](ctx context.Context, g *Graph[T]) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	n := g.Dim()
	t := &topoSorter[T]{
		graph: g,
		ctx:   ctx,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if t.state[v] != white {
			continue
		}
		if err := t.visit(v); err != nil {
			return nil, err
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// visit appends u in post-order after all of its descendants.
func (t *topoSorter[T]) visit(u int) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	switch t.state[u] {
	case gray:
		return fmt.Errorf("%w: back edge into %d", ErrCycleDetected, u)
	case black:
		return nil
	}
	t.state[u] = gray

	neighbors, err := t.graph.Neighbors(u)
	if err != nil {
		return err
	}
	for _, v := range neighbors {
		if err = t.visit(v); err != nil {
			return err
		}
	}

	t.state[u] = black
	t.order = append(t.order, u)

	return nil
}

// HasCycle reports whether g contains a directed cycle (self-loops included).
func HasCycle[T sparse.Number](g *Graph[T]) (bool, error) {
	_, err := TopologicalSort(context.Background(), g)
	if errors.Is(err, ErrCycleDetected) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return false, nil
}
