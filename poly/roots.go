// SPDX-License-Identifier: MIT
// Package: poly
//
// Root finding:
//   - Quadratic: closed form, real pair or complex-conjugate pair.
//   - Roots:     degree 2 delegates to Quadratic; any other degree runs
//     calculus.Solve from `degree` guesses spaced around zero and keeps the
//     guesses that converge. Non-converging guesses are skipped silently, so
//     roots may be missing or repeated.

package poly

import (
	"math"
	"math/cmplx"

	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/calculus"
)

const (
	opQuadratic = "Quadratic"
	opRoots     = "Roots"
)

// Option configures Roots.
type Option func(*options)

type options struct {
	solver []calculus.Option
	logger *zap.Logger
}

// WithSolverOptions forwards options to calculus.Solve for degrees other than 2.
func WithSolverOptions(opts ...calculus.Option) Option {
	return func(o *options) { o.solver = append(o.solver, opts...) }
}

// WithLogger sets the logger used to report skipped guesses at debug level.
// A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Quadratic solves a*x² + b*x + c = 0 with the closed-form formula.
//
// Behavior highlights:
//   - discriminant ≥ 0: two real roots (imaginary part 0), "+" root first.
//   - discriminant < 0: complex-conjugate pair, positive imaginary part first.
//
// Errors:
//   - ErrDivisionByZero when a == 0.
func Quadratic(a, b, c float64) ([]complex128, error) {
	if a == 0 {
		return nil, polyErrorf(opQuadratic, ErrDivisionByZero)
	}
	disc := b*b - 4*a*c
	den := 2 * a
	if disc >= 0 {
		sq := math.Sqrt(disc)
		return []complex128{
			complex((-b+sq)/den, 0),
			complex((-b-sq)/den, 0),
		}, nil
	}
	re := -b / den
	im := math.Sqrt(-disc) / den

	return []complex128{complex(re, im), complex(re, -im)}, nil
}

// Roots finds roots of the polynomial with the given coefficients
// (highest degree first).
//
// Implementation:
//   - Stage 1: reject an empty coefficient list.
//   - Stage 2: degree 2 → Quadratic.
//   - Stage 3: otherwise, for i in [0, degree) run calculus.Solve from the
//     guess i - degree/2 (integer division) and keep each converged root.
//
// Errors:
//   - ErrInvalidArgument for an empty coefficient list.
//   - ErrDivisionByZero for a degree-2 input with a zero leading coefficient.
//
// Notes:
//   - Completeness is not guaranteed for degree > 2 and duplicates are possible.
func Roots(coefs []float64, opts ...Option) ([]complex128, error) {
	if len(coefs) == 0 {
		return nil, polyErrorf(opRoots, ErrInvalidArgument)
	}
	o := options{logger: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	p := Polynomial(coefs)
	degree := p.Degree()
	if degree == 2 {
		return Quadratic(p[0], p[1], p[2])
	}

	roots := make([]complex128, 0, degree)
	for i := 0; i < degree; i++ {
		guess := float64(i - degree/2)
		x, err := calculus.Solve(p.Eval, guess, o.solver...)
		if err != nil {
			o.logger.Debug("root guess skipped",
				zap.Int("degree", degree),
				zap.Float64("guess", guess),
				zap.Error(err),
			)
			continue
		}
		roots = append(roots, complex(x, 0))
	}

	return roots, nil
}

// IsReal reports whether r has a zero imaginary part within tol.
func IsReal(r complex128, tol float64) bool {
	return math.Abs(imag(r)) <= tol
}

// Residual returns |p(r)| evaluated in complex arithmetic; handy to check
// that a reported root really is one.
func (p Polynomial) Residual(r complex128) float64 {
	var acc complex128
	for _, c := range p {
		acc = acc*r + complex(c, 0)
	}

	return cmplx.Abs(acc)
}
