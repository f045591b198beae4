// SPDX-License-Identifier: MIT

// Package calculus: functional configuration for the numeric kernels.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors (WithStep/WithTolerance panic on nonsensical values),
//   - gatherOptions (internal) which resolves a ...Option list.
package calculus

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStep is the central-difference step h used by Derivative.
	DefaultStep = 1e-8

	// DefaultSteps is the number of Simpson sub-intervals used by Integral.
	DefaultSteps = 1000

	// DefaultTolerance is the Newton-Raphson convergence and slope threshold.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations bounds the Newton-Raphson loop.
	DefaultMaxIterations = 1000
)

// ---------- Internal panic messages ----------

const (
	panicStepInvalid      = "calculus: WithStep: h must be finite and > 0"
	panicToleranceInvalid = "calculus: WithTolerance: tol must be finite and > 0"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	step          float64
	steps         int
	tolerance     float64
	maxIterations int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		step:          DefaultStep,
		steps:         DefaultSteps,
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
}

// Step returns the effective finite-difference step.
func (o Options) Step() float64 { return o.step }

// Steps returns the effective Simpson sub-interval count.
func (o Options) Steps() int { return o.steps }

// Tolerance returns the effective solver tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// MaxIterations returns the effective solver iteration budget.
func (o Options) MaxIterations() int { return o.maxIterations }

// WithStep overrides the central-difference step.
func WithStep(h float64) Option {
	if !(h > 0) || math.IsInf(h, 0) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = h }
}

// WithSteps overrides the Simpson sub-interval count. Odd values are
// rounded up to the next even number by Integral; n <= 0 makes Integral
// fail with ErrInvalidArgument (step counts usually come from user input).
func WithSteps(n int) Option {
	return func(o *Options) { o.steps = n }
}

// WithTolerance overrides the solver tolerance.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations overrides the solver iteration budget.
// n <= 0 makes Solve fail with ErrInvalidArgument.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.maxIterations = n }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
