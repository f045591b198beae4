// SPDX-License-Identifier: MIT

// Package poly finds roots of real polynomials.
//
// A Polynomial is a coefficient slice from the highest power down, so
// x² − 3x + 2 is Polynomial{1, -3, 2}. Quadratics are solved in closed form
// (complex-conjugate pairs included); every other degree is searched with the
// Newton-Raphson solver from package calculus, started from guesses spaced
// around zero. That search is lenient: guesses that do not converge are
// dropped without error, so roots can be missing or repeated.
//
//	roots, err := poly.Roots([]float64{1, -3, 2})
//	// roots == [2+0i 1+0i]
//
// Roots are complex128; real roots carry a zero imaginary part.
package poly
