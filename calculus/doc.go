// SPDX-License-Identifier: MIT

// Package calculus holds the numeric kernel: numerical differentiation,
// integration and root solving for real functions of one variable.
//
// ✨ Key features:
//   - Derivative: central difference, h = 1e-8
//   - Integral:   composite Simpson's rule, 1000 sub-intervals by default
//     (odd counts are rounded up to even)
//   - Solve:      Newton-Raphson, tolerance 1e-10, at most 1000 iterations
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numlab/calculus"
//
//	sq := func(x float64) float64 { return x*x - 4 }
//	root, err := calculus.Solve(sq, 1, calculus.WithTolerance(1e-12))
//	if errors.Is(err, calculus.ErrNoConvergence) {
//		// try another guess
//	}
//
// All knobs are functional options; see options.go for the defaults.
// Failures are sentinel errors (errors.go): ErrInvalidArgument,
// ErrDegenerateDerivative, ErrNoConvergence.
package calculus
