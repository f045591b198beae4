// SPDX-License-Identifier: MIT

package cli

import "errors"

// Sentinel errors for argument parsing.
var (
	// errEmptyList is returned when a comma-separated number list has no values.
	errEmptyList = errors.New("empty number list")

	// errBadNumber is returned when a list element is not a number.
	errBadNumber = errors.New("not a number")
)
