// SPDX-License-Identifier: MIT

// Package sparse: dense materialization.
// Dense is a concrete, row-major grid of raw magnitudes, produced from a
// Matrix purely for inspection and printing. It performs no arithmetic and
// no overflow checks; every value was already admitted by the Matrix.
package sparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense is a row-major rows×cols grid of uint64 magnitudes with zeros at
// unoccupied positions.
type Dense struct {
	r, c int      // number of rows and columns
	data []uint64 // flat backing storage, length == r*c
}

// ToDense materializes m into a full grid. Purely a copy: no arithmetic,
// no policy, no checks.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix) ToDense() *Dense {
	d := &Dense{r: m.rows, c: m.cols, data: make([]uint64, m.rows*m.cols)}
	for k, v := range m.entries {
		d.data[k.r*m.cols+k.c] = v.Value()
	}

	return d
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// At retrieves the magnitude at (row, col).
// Returns ErrOutOfRange for indices outside the grid.
// Complexity: O(1).
func (d *Dense) At(row, col int) (uint64, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return d.data[row*d.c+col], nil
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(r*c).
func (d *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < d.c; j++ {
			sb.WriteString(strconv.FormatUint(d.data[i*d.c+j], 10))
			if j < d.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
