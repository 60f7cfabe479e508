// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The NaN/Inf policy is captured by a matrix when it is created; later
//     Set calls follow the policy of that matrix, not of the caller.
//   - The Equal tolerance is per call; without WithTolerance it is the machine
//     epsilon of the scalar type.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on construction and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	tol            float64 // absolute Equal bound, only meaningful when hasTol
	hasTol         bool    // false ⇒ machine epsilon of T
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// NaN and ±Inf are rejected with ErrNaNInf by constructors and Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation. Arithmetic on such
// matrices follows IEEE-754 and may propagate NaN.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTolerance sets the absolute bound used by Equal.
// Panics with a stable message when tol is negative, NaN or ±Inf.
//
// Notes:
//   - Machine epsilon is an absolute bound, so it is tight for values far from
//     [-1,1]. Results of LU/Solve are usually compared with a looser tol.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.tol = tol
		o.hasTol = true
	}
}

// NewMatrixOptions resolves opts over the defaults. Exposed for callers that
// want to inspect or reuse an effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Tolerance reports the explicit Equal bound and whether one was set.
func (o Options) Tolerance() (float64, bool) { return o.tol, o.hasTol }

// gatherOptions applies user-provided setters on top of the defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
