// SPDX-License-Identifier: MIT

// Package numlab is a small numeric toolbox: numerical calculus, polynomial
// roots, dense matrices, descriptive statistics and exact integer sequences,
// plus a command-line front end.
//
// What is inside:
//
//	calculus/   central-difference derivative, Simpson integral, Newton-Raphson solver
//	poly/       polynomial type, closed-form quadratic, Newton-based root search
//	matrix/     Matrix interface, row-major Dense, Add/Sub/Mul/Transpose/Scale
//	stats/      count, mean, median, sample standard deviation, min, max
//	sequence/   Fibonacci terms and factorials on math/big
//	arith/      generic add/sub/mul/div with checked division
//	cmd/numlab  the numlab command (cobra + viper + zap)
//
// Every fallible routine returns a sentinel error wrapped with the name of
// the failing operation; match it with errors.Is:
//
//	x, err := calculus.Solve(f, 1)
//	if errors.Is(err, calculus.ErrNoConvergence) {
//		// try another guess
//	}
//
// Tunable knobs (step size, Simpson steps, tolerance, iteration budget) are
// functional options with documented defaults.
//
//	go install github.com/katalvlaran/numlab/cmd/numlab@latest
package numlab
