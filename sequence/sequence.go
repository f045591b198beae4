// SPDX-License-Identifier: MIT

// Package sequence generates arbitrary-precision integer sequences:
// the Fibonacci sequence and factorials, both on math/big.
package sequence

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidArgument indicates a non-positive Fibonacci count or a negative
// factorial argument.
var ErrInvalidArgument = errors.New("sequence: invalid argument")

// Fibonacci returns the first count terms F(0)..F(count-1), starting 0, 1.
//
// Implementation:
//   - iterative pair update (a, b) ← (b, a+b); each term is a fresh *big.Int.
//
// Errors:
//   - ErrInvalidArgument when count <= 0.
//
// Complexity:
//   - O(count) big additions; term i has O(i) bits.
func Fibonacci(count int) ([]*big.Int, error) {
	if count <= 0 {
		return nil, fmt.Errorf("Fibonacci(%d): %w", count, ErrInvalidArgument)
	}

	out := make([]*big.Int, 0, count)
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < count; i++ {
		out = append(out, new(big.Int).Set(a))
		a.Add(a, b)
		a, b = b, a
	}

	return out, nil
}

// Factorial returns n! with 0! = 1.
// It loops instead of recursing, so large n cannot grow the stack.
//
// Errors:
//   - ErrInvalidArgument when n < 0.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Factorial(%d): %w", n, ErrInvalidArgument)
	}

	return new(big.Int).MulRange(1, int64(n)), nil
}
