// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

const opDescribeColumns = "DescribeColumns"

// DescribeColumns summarises every column of m (one sample per column).
// The matrix is transposed once so each column becomes a contiguous row.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - ErrInsufficientData when m has fewer than two rows.
func DescribeColumns(m matrix.Matrix) ([]Summary, error) {
	mt, err := matrix.Transpose(m)
	if err != nil {
		return nil, statsErrorf(opDescribeColumns, err)
	}
	cols, err := matrix.ToRows(mt)
	if err != nil {
		return nil, statsErrorf(opDescribeColumns, err)
	}

	out := make([]Summary, len(cols))
	for j, col := range cols {
		if out[j], err = Describe(col); err != nil {
			return nil, statsErrorf(opDescribeColumns, fmt.Errorf("column %d: %w", j, err))
		}
	}

	return out, nil
}
