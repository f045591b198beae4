// SPDX-License-Identifier: MIT
// Package: calculus
//
// Purpose:
//   - Derivative: central finite difference with a fixed step.
//   - Integral:   composite Simpson's rule over an even number of sub-intervals.
//   - Solve:      Newton-Raphson using Derivative for the slope.
//
// Determinism:
//   - Fixed evaluation order; the same inputs always give the same bits.

package calculus

import "math"

// Func is a real-valued function of one real variable.
type Func func(x float64) float64

// Operation name constants for unified error wrapping.
const (
	opIntegral = "Integral"
	opSolve    = "Solve"
)

// Simpson weights.
const (
	weightEndpoint = 1.0
	weightOdd      = 4.0
	weightEven     = 2.0
)

// Derivative approximates f'(x) with the central difference
//
//	(f(x+h) - f(x-h)) / 2h,  h = DefaultStep unless WithStep is given.
//
// There is no guard against catastrophic cancellation beyond the fixed step.
// Complexity: two evaluations of f.
func Derivative(f Func, x float64, opts ...Option) float64 {
	return centralDiff(f, x, gatherOptions(opts...).step)
}

func centralDiff(f Func, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

// Integral approximates ∫_a^b f(x) dx with composite Simpson's rule.
//
// Implementation:
//   - Stage 1: validate f, bounds and step count; round an odd count up to even.
//   - Stage 2: sum f(x_i) with weights 1 (endpoints), 4 (odd i), 2 (even interior i).
//   - Stage 3: return h/3 * sum.
//
// a > b is allowed and yields the negated area.
//
// Errors:
//   - ErrInvalidArgument for nil f, non-finite bounds, steps <= 0 or steps == math.MaxInt.
//
// Complexity:
//   - steps+1 evaluations of f.
func Integral(f Func, a, b float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if f == nil {
		return 0, calculusErrorf(opIntegral, ErrInvalidArgument)
	}
	if !isFinite(a) || !isFinite(b) {
		return 0, calculusErrorf(opIntegral, ErrInvalidArgument)
	}
	n := o.steps
	// MaxInt is odd and cannot be rounded up to an even count.
	if n <= 0 || n == math.MaxInt {
		return 0, calculusErrorf(opIntegral, ErrInvalidArgument)
	}
	if n%2 == 1 {
		n++
	}

	h := (b - a) / float64(n)
	sum := weightEndpoint*f(a) + weightEndpoint*f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += weightOdd * f(x)
		} else {
			sum += weightEven * f(x)
		}
	}

	return h / 3 * sum, nil
}

// Solve finds x with f(x) ≈ 0 by Newton-Raphson iteration
//
//	x_{k+1} = x_k - f(x_k) / f'(x_k)
//
// starting from guess, with f' approximated by Derivative.
// It succeeds when |x_{k+1} - x_k| < tolerance and returns x_{k+1}.
//
// Errors:
//   - ErrInvalidArgument for nil f, a non-finite guess or maxIterations <= 0.
//   - ErrDegenerateDerivative when |f'(x_k)| < tolerance.
//   - ErrNoConvergence when maxIterations steps did not converge.
//
// Complexity:
//   - At most maxIterations * 3 evaluations of f.
func Solve(f Func, guess float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if f == nil || !isFinite(guess) || o.maxIterations <= 0 {
		return 0, calculusErrorf(opSolve, ErrInvalidArgument)
	}

	x := guess
	for iter := 0; iter < o.maxIterations; iter++ {
		fx := f(x)
		dfx := centralDiff(f, x, o.step)
		if math.Abs(dfx) < o.tolerance {
			return 0, calculusErrorf(opSolve, ErrDegenerateDerivative)
		}
		next := x - fx/dfx
		if math.Abs(next-x) < o.tolerance {
			return next, nil
		}
		x = next
	}

	return 0, calculusErrorf(opSolve, ErrNoConvergence)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
