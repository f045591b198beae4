// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numlab/matrix"
)

// parseFloats reads "1, -3, 2" into a slice. Whitespace around values is ignored.
func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyList
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d %q: %w", i, p, errBadNumber)
		}
		out[i] = v
	}

	return out, nil
}

// parseMatrix reads rows separated by ';' and cells by ',', e.g. "1,2;3,4".
func parseMatrix(s string) (*matrix.Dense, error) {
	rowTexts := strings.Split(strings.TrimSpace(s), ";")
	rows := make([][]float64, 0, len(rowTexts))
	for i, rt := range rowTexts {
		row, err := parseFloats(rt)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}

	return matrix.NewDenseFrom(rows)
}
