// SPDX-License-Identifier: MIT

// Package sparse: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a snapshot.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are resolved once, when a matrix is constructed. Clones, moved
//     matrices and results of arithmetic inherit the policy of their left operand.
//   - The threshold applies to |float64(v)|, so integer element types are
//     governed by the same rule (any non-zero integer is > DefaultEpsilon).
package sparse

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the magnitude at or below which a value is treated as
	// an exact zero and never materialized in storage.
	DefaultEpsilon = 1e-16

	// DefaultValidateNaNInf toggles rejection of NaN/±Inf in Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "sparse: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
// Fields are unexported; read them through Epsilon and ValidateNaNInf.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon returns the zero threshold of the policy.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether Set rejects NaN/±Inf values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the zero threshold eps.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - A larger eps prunes more aggressively: Set(i, j, v) with |v| <= eps
//     removes the entry at (i, j).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes Set reject NaN and ±Inf with ErrNaNInf (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/±Inf pass through Set.
// ±Inf is stored; NaN never compares greater than eps and is therefore
// treated as a zero (assigning it removes the entry).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts on top of the defaults and returns the snapshot.
// Useful for callers (config loaders, CLIs) that want to inspect a policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
