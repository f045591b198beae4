// SPDX-License-Identifier: MIT
// Package stats: sentinel error set.

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates an empty sample.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrInsufficientData indicates fewer values than the statistic needs
	// (the sample standard deviation needs at least two).
	ErrInsufficientData = errors.New("stats: insufficient data")

	// ErrNonFinite indicates a NaN or ±Inf value in the sample.
	ErrNonFinite = errors.New("stats: NaN or Inf in input")
)

func statsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
