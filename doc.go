// Package lvsparse is a compact toolkit for compressed-row sparse matrices
// and the graphs they describe.
//
// 🚀 What is lvsparse?
//
//	A generic, allocation-conscious CSR engine plus the pieces around it:
//		• sparse/: Matrix[T]: invariant-preserving At/Set, resize, Add/Sub,
//		  Scale/Divide, reference Mul, MulVec, Transpose, text codec, gonum views
//		• graph/: Graph[T], square adjacency wrapper with AddNode/RemoveNode,
//		  BFS, Dijkstra and topological sort
//		• solve/: conjugate-gradient solver driven by sparse.MulVec
//		• store/: named matrices persisted in an embedded BadgerDB
//		• cmd/lvsparse: cobra CLI over all of the above
//
// ✨ Guarantees
//
//   - No stored zeros: every write with |v| <= eps removes storage.
//   - Errors, not panics: out-of-range access and shape mismatches return
//     sentinel errors matched with errors.Is.
//   - Deterministic: fixed loop orders, insertion-ordered rows, reproducible
//     text encoding.
//
// Quick start:
//
//	m, _ := sparse.NewZeros[float64](3, 3)
//	_ = m.Set(1, 0, 1)
//	_ = m.Set(1, 2, 1)
//	y, _ := sparse.MulVec(m, []float64{1, 1, 1}) // [0 2 0]
//
//	g, _ := graph.New[int](2, false)
//	g.AddNode()
//	_ = g.Set(0, 2, 1)
package lvsparse
