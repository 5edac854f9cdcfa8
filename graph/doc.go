// Package graph wraps a square sparse matrix as a weighted directed graph.
//
// What
//
//   - Graph[T] owns one dim×dim sparse.Matrix[T]; the stored entry (u, v)
//     is the weight of the edge u→v. Writing a zero weight removes the edge.
//   - AddNode grows the matrix by one row and one column; RemoveNode drops
//     the highest-index node and every edge touching it.
//   - Load/Save/Encode/Decode use the sparse text format and reject
//     non-square input.
//   - BFS walks stored edges from a start node, returning visit order,
//     depths and parent links. Options: WithContext, WithMaxDepth,
//     WithFilterNeighbor, WithOnVisit.
//   - Dijkstra treats stored weights as edge lengths and returns distances
//     and predecessors (PathResult.PathTo). Negative weights are rejected.
//   - TopologicalSort orders a DAG by depth-first post-order; HasCycle
//     reports directed cycles, self-loops included.
//
// Determinism
//
//	Neighbors returns targets in ascending index order regardless of the
//	underlying storage order, and BFS enqueues them in that order.
//
// Usage
//
//	g, _ := graph.New[float64](3, false)
//	_ = g.Set(0, 1, 2.5)
//	_ = g.Set(1, 2, 1)
//	res, _ := graph.BFS(g, 0)
//	// res.Order == [0 1 2], res.Depth[2] == 2
//
// Errors
//
//   - ErrInvalidDimension, ErrEmptyGraph, ErrNotSquare, ErrNodeOutOfRange.
//   - ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation (BFS, Dijkstra).
//   - ErrNegativeWeight, ErrUnreachable (Dijkstra), ErrCycleDetected.
//   - Element access forwards the sparse errors (sparse.ErrOutOfRange, ...).
package graph
