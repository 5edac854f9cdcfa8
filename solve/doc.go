// Package solve provides iterative linear solvers over sparse.Matrix.
//
// CG implements unpreconditioned conjugate gradients for symmetric
// positive-definite systems. The matrix is touched only through
// sparse.MulVec, so the cost per iteration is O(rows + nnz).
//
//	res, err := solve.CG(ctx, a, b, solve.WithTolerance(1e-8))
//	if errors.Is(err, solve.ErrNotConverged) {
//		// res.X holds the last iterate
//	}
package solve
