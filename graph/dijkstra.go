// SPDX-License-Identifier: MIT

package graph

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsparse/sparse"
)

var (
	// ErrNegativeWeight is returned when any stored edge weight is negative.
	ErrNegativeWeight = errors.New("graph: negative edge weight encountered")

	// ErrUnreachable is returned by PathResult.PathTo for nodes with no path.
	ErrUnreachable = errors.New("graph: node is unreachable from source")
)

// PathOptions configures Dijkstra.
type PathOptions struct {
	// Ctx is checked once per settled node. Defaults to context.Background().
	Ctx context.Context

	// MaxDistance stops exploration beyond this total distance.
	// Defaults to +Inf (no limit).
	MaxDistance float64

	// InfEdgeThreshold marks edges with weight >= threshold as impassable.
	// Defaults to +Inf (every stored edge is passable).
	InfEdgeThreshold float64

	err error
}

// PathOption mutates PathOptions.
type PathOption func(*PathOptions)

// DefaultPathOptions returns options with no distance limit and no impassable edges.
func DefaultPathOptions() PathOptions {
	return PathOptions{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithPathContext sets the cancellation context. A nil ctx is ignored.
func WithPathContext(ctx context.Context) PathOption {
	return func(o *PathOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance bounds the explored distance. Negative or NaN values
// record ErrOptionViolation.
func WithMaxDistance(d float64) PathOption {
	return func(o *PathOptions) {
		if !(d >= 0) {
			o.err = fmt.Errorf("%w: MaxDistance=%g", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats edges with weight >= t as missing.
// Non-positive or NaN values record ErrOptionViolation.
func WithInfEdgeThreshold(t float64) PathOption {
	return func(o *PathOptions) {
		if !(t > 0) {
			o.err = fmt.Errorf("%w: InfEdgeThreshold=%g", ErrOptionViolation, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}

// PathResult holds single-source shortest path distances.
type PathResult struct {
	// Source is the start node.
	Source int
	// Dist[v] is the shortest distance to v, or +Inf if v was not reached.
	Dist []float64
	// Prev[v] is v's predecessor on a shortest path, or -1.
	Prev []int
}

// PathTo reconstructs the node sequence from Source to dest.
// Errors: ErrNodeOutOfRange, ErrUnreachable.
func (r *PathResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("graph.PathTo(%d): %w", dest, ErrNodeOutOfRange)
	}
	if math.IsInf(r.Dist[dest], 1) {
		return nil, fmt.Errorf("graph.PathTo(%d): %w", dest, ErrUnreachable)
	}
	var path []int
	for v := dest; v != -1; v = r.Prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Dijkstra computes shortest paths from source using stored edge weights
// as lengths. Self-loops never shorten a path and are effectively ignored.
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation,
// ErrNegativeWeight or the context error.
// Complexity: O((V + E) log V).
func Dijkstra[T sparse.Number](g *Graph[T], source int, opts ...PathOption) (*PathResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Dim()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("graph: Dijkstra(%d) on %d nodes: %w", source, n, ErrStartOutOfRange)
	}

	var negErr error
	g.adj.Do(func(u, v int, w T) {
		if negErr == nil && w < 0 {
			negErr = fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, u, v, w)
		}
	})
	if negErr != nil {
		return nil, negErr
	}

	r := &runner[T]{
		graph:   g,
		opts:    o,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
		res: &PathResult{
			Source: source,
			Dist:   make([]float64, n),
			Prev:   make([]int, n),
		},
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of one Dijkstra run.
type runner[T sparse.Number] struct {
	graph   *Graph[T]
	opts    PathOptions
	visited []bool
	pq      nodePQ
	res     *PathResult
}

func (r *runner[T]) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = math.Inf(1)
		r.res.Prev[v] = -1
	}
	r.res.Dist[r.res.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.res.Source, dist: 0})
}

// process pops nodes in distance order until the heap drains or MaxDistance is exceeded.
func (r *runner[T]) process() error {
	for r.pq.Len() > 0 {
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every out-neighbor of u.
func (r *runner[T]) relax(u int) error {
	cols, vals, err := r.graph.adj.Row(u)
	if err != nil {
		return fmt.Errorf("graph: Dijkstra: neighbors of %d: %w", u, err)
	}
	for k, v := range cols {
		w := float64(vals[k])
		if w >= r.opts.InfEdgeThreshold {
			continue
		}
		d := r.res.Dist[u] + w
		if d > r.opts.MaxDistance || d >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = d
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: d})
	}

	return nil
}

// nodeItem is a heap entry. Stale entries are skipped on pop.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
