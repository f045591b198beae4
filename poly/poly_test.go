package poly_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/numlab/calculus"
	"github.com/katalvlaran/numlab/poly"
)

// TestQuadratic_RealRoots checks x² − 3x + 2 has roots {1, 2} in any order.
func TestQuadratic_RealRoots(t *testing.T) {
	roots, err := poly.Roots([]float64{1, -3, 2})
	require.NoError(t, err)
	assert.ElementsMatch(t, []complex128{1, 2}, roots)
}

// TestQuadratic_ComplexPair checks a negative discriminant yields a conjugate pair.
func TestQuadratic_ComplexPair(t *testing.T) {
	roots, err := poly.Quadratic(1, 2, 5) // (x+1)² + 4
	require.NoError(t, err)
	require.Len(t, roots, 2)

	assert.InDelta(t, -1.0, real(roots[0]), 1e-12)
	assert.InDelta(t, 2.0, imag(roots[0]), 1e-12)
	assert.InDelta(t, -1.0, real(roots[1]), 1e-12)
	assert.InDelta(t, -2.0, imag(roots[1]), 1e-12)
	assert.False(t, poly.IsReal(roots[0], 1e-12))
}

// TestQuadratic_DoubleRoot checks a zero discriminant.
func TestQuadratic_DoubleRoot(t *testing.T) {
	roots, err := poly.Quadratic(1, -4, 4)
	require.NoError(t, err)
	assert.Equal(t, []complex128{2, 2}, roots)
	assert.True(t, poly.IsReal(roots[0], 0))
}

// TestQuadratic_ZeroLeading ensures a == 0 is reported instead of producing Inf/NaN.
func TestQuadratic_ZeroLeading(t *testing.T) {
	_, err := poly.Quadratic(0, 1, 1)
	require.ErrorIs(t, err, poly.ErrDivisionByZero)

	_, err = poly.Roots([]float64{0, 1, 1})
	require.ErrorIs(t, err, poly.ErrDivisionByZero)
}

// TestRoots_Empty ensures an empty or nil coefficient list fails.
func TestRoots_Empty(t *testing.T) {
	_, err := poly.Roots(nil)
	require.ErrorIs(t, err, poly.ErrInvalidArgument)

	_, err = poly.Roots([]float64{})
	require.ErrorIs(t, err, poly.ErrInvalidArgument)

	_, err = poly.New()
	require.ErrorIs(t, err, poly.ErrInvalidArgument)
}

// TestRoots_Linear checks the single guess at 0 for a degree-1 input.
func TestRoots_Linear(t *testing.T) {
	roots, err := poly.Roots([]float64{2, -4})
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.InDelta(t, 2.0, real(roots[0]), 1e-9)
	assert.Equal(t, 0.0, imag(roots[0]))
}

// TestRoots_Constant checks that degree 0 runs no guesses.
func TestRoots_Constant(t *testing.T) {
	roots, err := poly.Roots([]float64{5})
	require.NoError(t, err)
	assert.Empty(t, roots)
}

// TestRoots_CubicLenient checks (x−1)(x−2)(x−3): every guess (−1, 0, 1)
// converges to the nearest root 1, so duplicates are reported and 2, 3 are missed.
func TestRoots_CubicLenient(t *testing.T) {
	p := poly.Polynomial{1, -6, 11, -6}

	roots, err := poly.Roots(p)
	require.NoError(t, err)
	require.Len(t, roots, 3)
	for _, r := range roots {
		assert.True(t, poly.IsReal(r, 0))
		assert.Less(t, p.Residual(r), 1e-6)
		assert.InDelta(t, 1.0, real(r), 1e-6)
	}
}

// TestRoots_SkipsNonConverging checks that x⁴ + 1 (no real roots) yields no
// roots and no error, and that every skipped guess is logged at debug level.
func TestRoots_SkipsNonConverging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	roots, err := poly.Roots(
		[]float64{1, 0, 0, 0, 1},
		poly.WithLogger(zap.New(core)),
		poly.WithSolverOptions(calculus.WithMaxIterations(50)),
	)
	require.NoError(t, err)
	assert.Empty(t, roots)
	assert.Equal(t, 4, logs.FilterMessage("root guess skipped").Len())
}

// TestRoots_SolverOptionsForwarded uses a tight budget to force a skip.
func TestRoots_SolverOptionsForwarded(t *testing.T) {
	roots, err := poly.Roots(
		[]float64{1, -10},
		poly.WithSolverOptions(calculus.WithMaxIterations(1)),
	)
	require.NoError(t, err)
	assert.Empty(t, roots, "one Newton step from 0 cannot satisfy the tolerance")
}

func TestPolynomial_EvalDerivativeString(t *testing.T) {
	p, err := poly.New(1, -3, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, 0.0, p.Eval(1))
	assert.Equal(t, 0.0, p.Eval(2))
	assert.Equal(t, 2.0, p.Eval(0))
	assert.Equal(t, 6.0, p.Func()(4))

	assert.Equal(t, poly.Polynomial{2, -3}, p.Derivative())
	assert.Equal(t, poly.Polynomial{0}, poly.Polynomial{7}.Derivative())

	assert.Equal(t, "1x^2 - 3x + 2", p.String())
	assert.Equal(t, "-2x^3 + 0.5", poly.Polynomial{-2, 0, 0, 0.5}.String())
	assert.Equal(t, "0", poly.Polynomial{0, 0}.String())
	assert.Equal(t, 0.0, poly.Polynomial{}.Eval(3))
	assert.InDelta(t, 0.0, p.Residual(complex(1, 0)), 1e-15)
	assert.False(t, math.IsNaN(p.Residual(complex(0, 1))))
}
