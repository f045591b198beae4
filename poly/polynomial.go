// SPDX-License-Identifier: MIT
// Package: poly
//
// Polynomial is a dense coefficient slice ordered from the highest power
// down: p[0]*x^n + p[1]*x^(n-1) + ... + p[n].

package poly

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/numlab/calculus"
)

// Polynomial holds coefficients from the highest degree down to the constant term.
type Polynomial []float64

// New copies coefs into a Polynomial.
// Errors: ErrInvalidArgument when coefs is empty.
func New(coefs ...float64) (Polynomial, error) {
	if len(coefs) == 0 {
		return nil, polyErrorf("New", ErrInvalidArgument)
	}
	p := make(Polynomial, len(coefs))
	copy(p, coefs)

	return p, nil
}

// Degree returns len(p)-1, or -1 for an empty polynomial.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Eval evaluates p at x with Horner's scheme. An empty polynomial evaluates to 0.
// Complexity: O(n).
func (p Polynomial) Eval(x float64) float64 {
	var acc float64
	for _, c := range p {
		acc = acc*x + c
	}

	return acc
}

// Func adapts p to the calculus kernel's function type.
func (p Polynomial) Func() calculus.Func { return p.Eval }

// Derivative returns the exact derivative polynomial.
// The derivative of a constant is the zero constant {0}.
func (p Polynomial) Derivative() Polynomial {
	n := p.Degree()
	if n < 1 {
		return Polynomial{0}
	}
	d := make(Polynomial, n)
	for i := 0; i < n; i++ {
		d[i] = p[i] * float64(n-i)
	}

	return d
}

// String renders p as "1x^2 - 3x + 2". Zero coefficients are skipped;
// the zero polynomial renders as "0".
func (p Polynomial) String() string {
	var sb strings.Builder
	n := p.Degree()
	for i, c := range p {
		if c == 0 {
			continue
		}
		pow := n - i
		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		switch {
		case pow == 1:
			sb.WriteString("x")
		case pow > 1:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(pow))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
