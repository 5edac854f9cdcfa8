// SPDX-License-Identifier: MIT

package solve

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNotConverged is returned when the iteration limit is reached before
	// the residual criterion is met. The partial Result is returned alongside.
	ErrNotConverged = errors.New("solve: iteration limit reached")

	// ErrBreakdown is returned when p·Ap <= 0, i.e. the matrix is not
	// positive definite along the current search direction.
	ErrBreakdown = errors.New("solve: breakdown, matrix is not positive definite")
)

// Result holds the outcome of an iterative solve.
type Result struct {
	// X is the approximate solution.
	X []float64
	// Iterations is the number of CG steps performed.
	Iterations int
	// ResidualNorm is the final 2-norm of b − A·x.
	ResidualNorm float64
}

// CG solves A·x = b for symmetric positive-definite A with the
// unpreconditioned conjugate gradient method. Every product A·p goes through
// sparse.MulVec.
//
// The iteration stops once |r| <= tol·|b| (tol from WithTolerance), after
// WithMaxIterations steps (ErrNotConverged), on breakdown (ErrBreakdown) or
// when ctx is done (ctx.Err()). A nil ctx means context.Background().
//
// Errors:
//   - sparse.ErrNilMatrix, sparse.ErrDimensionMismatch (A not square,
//     len(b) or the initial guess not matching A).
//
// Complexity: O(iterations · (rows + nnz)).
func CG(ctx context.Context, a *sparse.Matrix[float64], b []float64, opts ...Option) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a == nil {
		return nil, fmt.Errorf("solve.CG: %w", sparse.ErrNilMatrix)
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("solve.CG: %d×%d matrix: %w", a.Rows(), a.Cols(), sparse.ErrDimensionMismatch)
	}
	n := a.Rows()
	if err := sparse.ValidateVecLen(len(b), n); err != nil {
		return nil, fmt.Errorf("solve.CG: b: %w", err)
	}
	o := gatherOptions(opts...)
	if o.x0 != nil {
		if err := sparse.ValidateVecLen(len(o.x0), n); err != nil {
			return nil, fmt.Errorf("solve.CG: initial guess: %w", err)
		}
	}
	if o.maxIter == 0 {
		o.maxIter = 2 * n
	}

	res := &Result{X: make([]float64, n)}
	if n == 0 {
		return res, nil
	}

	x := res.X
	r := make([]float64, n)
	if o.x0 != nil {
		copy(x, o.x0)
		ax, err := sparse.MulVec(a, x)
		if err != nil {
			return nil, fmt.Errorf("solve.CG: %w", err)
		}
		floats.SubTo(r, b, ax) // r = b − A·x0
	} else {
		copy(r, b) // r = b
	}

	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		bnorm = 1
	}
	target := o.tol * bnorm
	res.ResidualNorm = floats.Norm(r, 2)
	if res.ResidualNorm <= target {
		return res, nil
	}

	p := make([]float64, n)
	copy(p, r)
	rho := floats.Dot(r, r) // ρ = r·r
	for res.Iterations < o.maxIter {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		ap, err := sparse.MulVec(a, p)
		if err != nil {
			return res, fmt.Errorf("solve.CG: %w", err)
		}
		pAp := floats.Dot(p, ap)
		if !(pAp > 0) {
			return res, fmt.Errorf("solve.CG: iteration %d: p·Ap = %g: %w", res.Iterations+1, pAp, ErrBreakdown)
		}
		alpha := rho / pAp           // α = ρ / (p·Ap)
		floats.AddScaled(x, alpha, p) // x = x + α p
		floats.AddScaled(r, -alpha, ap)
		res.Iterations++

		res.ResidualNorm = floats.Norm(r, 2)
		if res.ResidualNorm <= target {
			return res, nil
		}
		rhoNext := floats.Dot(r, r)
		floats.AddScaledTo(p, r, rhoNext/rho, p) // p = r + β p
		rho = rhoNext
	}

	return res, fmt.Errorf("solve.CG: %d iterations, residual %g: %w", res.Iterations, res.ResidualNorm, ErrNotConverged)
}
