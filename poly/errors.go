// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an empty or absent coefficient list.
	ErrInvalidArgument = errors.New("poly: invalid argument")

	// ErrDivisionByZero indicates a zero leading coefficient in the quadratic formula.
	ErrDivisionByZero = errors.New("poly: division by zero")
)

// polyErrorf wraps err with an operation tag, preserving the sentinel via %w.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
