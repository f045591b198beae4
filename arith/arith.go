// SPDX-License-Identifier: MIT

// Package arith provides the four basic arithmetic operations over any Go
// integer or floating-point type, resolved at compile time through the
// Number constraint. Division by zero is an error for every element type,
// floats included, instead of a panic or ±Inf.
package arith

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errors.New("arith: division by zero")

	// ErrInvalidArgument indicates an unknown operation.
	ErrInvalidArgument = errors.New("arith: invalid argument")
)

// Number is the set of element types the operations accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Op names one of the arithmetic operations.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

var opNames = [...]string{"add", "sub", "mul", "div"}

// String returns the lower-case operation name, e.g. "add".
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return opNames[o]
}

// ParseOp maps "add", "sub", "mul", "div" (or + - * /) to an Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "add", "+":
		return OpAdd, nil
	case "sub", "-":
		return OpSub, nil
	case "mul", "*", "x":
		return OpMul, nil
	case "div", "/":
		return OpDiv, nil
	}

	return 0, fmt.Errorf("ParseOp(%q): %w", s, ErrInvalidArgument)
}

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T Number](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T Number](a, b T) T { return a * b }

// Div returns a / b; integer types truncate toward zero.
// Errors: ErrDivisionByZero when b == 0.
func Div[T Number](a, b T) (T, error) {
	if b == 0 {
		var zero T
		return zero, fmt.Errorf("Div: %w", ErrDivisionByZero)
	}

	return a / b, nil
}

// Apply dispatches op on a and b.
// Errors: ErrDivisionByZero from Div, ErrInvalidArgument for an unknown op.
func Apply[T Number](op Op, a, b T) (T, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSub:
		return Sub(a, b), nil
	case OpMul:
		return Mul(a, b), nil
	case OpDiv:
		return Div(a, b)
	}

	var zero T
	return zero, fmt.Errorf("Apply(%s): %w", op, ErrInvalidArgument)
}
