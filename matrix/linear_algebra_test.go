// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddSub checks element-wise kernels on both the Dense and fallback paths.
func TestAddSub(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{6, 8}, {10, 12}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{-4, -4}, {-4, -4}}, diff)

	// Fallback path must agree with the fast path.
	sum2, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{6, 8}, {10, 12}}, sum2)

	diff2, err := matrix.Sub(a, hide{b})
	require.NoError(t, err)
	requireRows(t, [][]float64{{-4, -4}, {-4, -4}}, diff2)

	// Operands are not mutated.
	requireRows(t, [][]float64{{1, 2}, {3, 4}}, a)
}

// TestAddSubShapeMismatch ensures differing shapes fail before computing.
func TestAddSubShapeMismatch(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(a, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulKnown checks a hand-computed product.
func TestMulKnown(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFrom(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{58, 64}, {139, 154}}, c)

	c2, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireRows(t, [][]float64{{58, 64}, {139, 154}}, c2)
}

// TestMulShape verifies that an m×n by n×p product is m×p for a grid of shapes.
func TestMulShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for m := 1; m <= 4; m++ {
		for n := 1; n <= 4; n++ {
			for p := 1; p <= 4; p++ {
				a := MustDense(t, m, n)
				b := MustDense(t, n, p)
				for i := 0; i < m; i++ {
					for j := 0; j < n; j++ {
						require.NoError(t, a.Set(i, j, rng.Float64()))
					}
				}
				c, err := matrix.Mul(a, b)
				require.NoError(t, err)
				assert.Equal(t, m, c.Rows())
				assert.Equal(t, p, c.Cols())
			}
		}
	}
}

// TestMulIncompatible ensures a.Cols != b.Rows fails.
func TestMulIncompatible(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(MustDense(t, 2, 3), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulIdentity checks A·I == A.
func TestMulIdentity(t *testing.T) {
	a := MustFrom(t, [][]float64{{1.5, -2}, {0.25, 8}})
	I, err := matrix.Identity(2)
	require.NoError(t, err)

	c, err := matrix.Mul(a, I)
	require.NoError(t, err)
	ok, err := matrix.AllClose(a, c, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestTransposeScale covers the remaining helpers.
func TestTransposeScale(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	at2, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at2)

	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	requireRows(t, [][]float64{{2, 4, 6}, {8, 10, 12}}, s)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAllClose checks tolerance semantics and shape validation.
func TestAllClose(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2}})
	b := MustFrom(t, [][]float64{{1, 2.001}})

	ok, err := matrix.AllClose(a, b, 0, 1e-2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTypedNilDense ensures a nil *Dense stored in a Matrix fails validation
// instead of dereferencing.
func TestTypedNilDense(t *testing.T) {
	var nilDense *matrix.Dense
	b := MustDense(t, 2, 2)

	_, err := matrix.Mul(nilDense, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Mul(b, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Add(nilDense, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Transpose(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Scale(nilDense, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.ToRows(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
