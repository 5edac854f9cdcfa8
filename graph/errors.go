// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for graph construction, mutation and traversal.
var (
	// ErrInvalidDimension is returned for a negative node count.
	ErrInvalidDimension = errors.New("graph: node count must be >= 0")

	// ErrEmptyGraph is returned by RemoveNode on a graph with no nodes.
	ErrEmptyGraph = errors.New("graph: graph has no nodes")

	// ErrNotSquare is returned when a loaded adjacency matrix is not dim×dim.
	ErrNotSquare = errors.New("graph: adjacency matrix is not square")

	// ErrNodeOutOfRange is returned for a node index outside [0, Dim()).
	ErrNodeOutOfRange = errors.New("graph: node index out of range")

	// ErrGraphNil is returned if a nil graph pointer is passed to BFS.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrStartOutOfRange is returned when the BFS start node does not exist.
	ErrStartOutOfRange = errors.New("graph: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graph: invalid option supplied")
)
