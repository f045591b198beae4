// SPDX-License-Identifier: MIT
// Package calculus: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag; callers
// match them with errors.Is.

package calculus

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a nil function, non-finite input or a
	// non-positive step count.
	ErrInvalidArgument = errors.New("calculus: invalid argument")

	// ErrDegenerateDerivative is returned by Solve when |f'(x)| falls below
	// the tolerance, so the Newton step would divide by (almost) zero.
	ErrDegenerateDerivative = errors.New("calculus: derivative too close to zero")

	// ErrNoConvergence is returned by Solve when the iteration budget is
	// exhausted before two successive iterates agree within tolerance.
	ErrNoConvergence = errors.New("calculus: solver did not converge")
)

// calculusErrorf wraps err with an operation tag, preserving the sentinel via %w.
func calculusErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
