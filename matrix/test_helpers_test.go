// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Keep all data finite so NaN/Inf rejection never interferes.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto the At/Set fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from rows or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// requireRows asserts m holds exactly want.
func requireRows(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	got, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
