// SPDX-License-Identifier: MIT

// Package solve: functional configuration of the iterative solvers.
package solve

import "math"

const (
	// DefaultTolerance is the relative residual |r|/|b| at which CG stops.
	DefaultTolerance = 1e-10

	panicToleranceInvalid = "solve: WithTolerance: tol must be finite and in (0, 1)"
	panicMaxIterationsNeg = "solve: WithMaxIterations: n must be >= 0"
)

// Option configures a solve. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	tol     float64
	maxIter int       // 0 means 2·dim
	x0      []float64 // nil means the zero vector
}

// WithTolerance sets the relative residual stopping criterion.
// Panics unless 0 < tol < 1.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol <= 0 || tol >= 1 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps the iteration count; 0 selects twice the dimension.
// Panics on a negative n.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterationsNeg)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithInitialGuess starts the iteration from x0 instead of the zero vector.
// x0 is copied; its length is checked against the system when solving.
func WithInitialGuess(x0 []float64) Option {
	guess := append([]float64(nil), x0...)

	return func(o *Options) { o.x0 = guess }
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
