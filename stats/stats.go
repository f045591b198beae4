// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Descriptive statistics over a finite sample: count, mean, median,
//     sample standard deviation (Bessel-corrected), min and max.
//   - Inputs are never modified; Median sorts a private copy.
//
// Determinism:
//   - Single left-to-right passes; no randomness.

package stats

import (
	"math"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opMean     = "Mean"
	opMedian   = "Median"
	opStdDev   = "StdDev"
	opMin      = "Min"
	opMax      = "Max"
	opDescribe = "Describe"
)

// minStdDevSamples is the smallest sample the Bessel-corrected divisor n-1 allows.
const minStdDevSamples = 2

// Summary is the aggregate computed once by Describe.
// It is returned by value, so callers cannot change the statistics of
// another holder.
type Summary struct {
	Count  int     `yaml:"count"`
	Mean   float64 `yaml:"mean"`
	Median float64 `yaml:"median"`
	StdDev float64 `yaml:"std_dev"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

// validate rejects empty and non-finite samples.
func validate(values []float64) error {
	if len(values) == 0 {
		return ErrEmptyInput
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}

// Mean returns the arithmetic mean.
// Errors: ErrEmptyInput, ErrNonFinite.
func Mean(values []float64) (float64, error) {
	if err := validate(values); err != nil {
		return 0, statsErrorf(opMean, err)
	}

	return mean(values), nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Median returns the middle value of the sorted sample; for an even count
// it averages the two middle values.
// Errors: ErrEmptyInput, ErrNonFinite.
func Median(values []float64) (float64, error) {
	if err := validate(values); err != nil {
		return 0, statsErrorf(opMedian, err)
	}

	return median(values), nil
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return sorted[n/2]
}

// StdDev returns the sample standard deviation sqrt(Σ(x-mean)² / (n-1)).
// Errors: ErrEmptyInput, ErrNonFinite, ErrInsufficientData (n < 2).
func StdDev(values []float64) (float64, error) {
	if err := validate(values); err != nil {
		return 0, statsErrorf(opStdDev, err)
	}
	if len(values) < minStdDevSamples {
		return 0, statsErrorf(opStdDev, ErrInsufficientData)
	}

	return stdDev(values, mean(values)), nil
}

func stdDev(values []float64, mu float64) float64 {
	var sumSq float64
	for _, v := range values {
		d := v - mu
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(values)-1))
}

// Min returns the smallest value.
// Errors: ErrEmptyInput, ErrNonFinite.
func Min(values []float64) (float64, error) {
	if err := validate(values); err != nil {
		return 0, statsErrorf(opMin, err)
	}

	return slices.Min(values), nil
}

// Max returns the largest value.
// Errors: ErrEmptyInput, ErrNonFinite.
func Max(values []float64) (float64, error) {
	if err := validate(values); err != nil {
		return 0, statsErrorf(opMax, err)
	}

	return slices.Max(values), nil
}

// Describe computes every field of Summary in one call.
// A single value fails with ErrInsufficientData because the standard
// deviation is part of the summary.
//
// Complexity: O(n log n) for the median sort, O(n) otherwise.
func Describe(values []float64) (Summary, error) {
	if err := validate(values); err != nil {
		return Summary{}, statsErrorf(opDescribe, err)
	}
	if len(values) < minStdDevSamples {
		return Summary{}, statsErrorf(opDescribe, ErrInsufficientData)
	}

	mu := mean(values)

	return Summary{
		Count:  len(values),
		Mean:   mu,
		Median: median(values),
		StdDev: stdDev(values, mu),
		Min:    slices.Min(values),
		Max:    slices.Max(values),
	}, nil
}
