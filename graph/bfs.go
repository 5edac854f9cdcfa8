// SPDX-License-Identifier: MIT

package graph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T sparse.Number] struct {
	graph   *Graph[T]
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from start over stored edges
// (a stored entry (u, v) is the edge u→v), applying any number of Options.
// Neighbors are enqueued in ascending index order, so the result is
// deterministic.
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, the context
// error on cancellation, or any OnVisit error.
// Complexity: O(V + E log d) where d is the maximum out-degree.
func BFS[T sparse.Number](g *Graph[T], start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Dim()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("graph: BFS(%d) on %d nodes: %w", start, n, ErrStartOutOfRange)
	}

	w := &walker[T]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks node visited at depth d, records its parent and queues it.
func (w *walker[T]) enqueue(node, d, parent int) {
	w.visited[node] = true
	w.res.Depth[node] = d
	if parent >= 0 {
		w.res.Parent[node] = parent
	}
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("graph: OnVisit error at %d: %w", item.node, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then queues every unseen
// target of item's outgoing edges.
func (w *walker[T]) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.node)
	if err != nil {
		return err
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.node)
	}

	return nil
}
