package calculus_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/calculus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := calculus.DefaultOptions()
	assert.Equal(t, calculus.DefaultStep, o.Step())
	assert.Equal(t, calculus.DefaultSteps, o.Steps())
	assert.Equal(t, calculus.DefaultTolerance, o.Tolerance())
	assert.Equal(t, calculus.DefaultMaxIterations, o.MaxIterations())

	assert.Equal(t, 1e-8, calculus.DefaultStep)
	assert.Equal(t, 1000, calculus.DefaultSteps)
	assert.Equal(t, 1e-10, calculus.DefaultTolerance)
	assert.Equal(t, 1000, calculus.DefaultMaxIterations)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { calculus.WithStep(0) })
	require.Panics(t, func() { calculus.WithStep(math.Inf(1)) })
	require.Panics(t, func() { calculus.WithStep(math.NaN()) })
	require.Panics(t, func() { calculus.WithTolerance(-1) })
	require.NotPanics(t, func() { calculus.WithSteps(0) })
	require.NotPanics(t, func() { calculus.WithMaxIterations(0) })
}
