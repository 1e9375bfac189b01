// SPDX-License-Identifier: MIT

// Package sparse: exact (unbounded) reference accumulation.
//
// Exact mirrors the triplet construction and scaling pipeline with big.Int
// cells instead of fixed-width values, so it never wraps. A same-width
// reference matrix would wrap in lockstep with the matrix under audit at
// 64 bits and hide the overflow; Exact cannot.
package sparse

import (
	"fmt"
	"math/big"
)

// Exact is the unbounded per-cell truth of a triplet construction.
// Immutable like Matrix: Scale returns a new instance.
type Exact struct {
	rows, cols int
	cells      map[coord]*big.Int
}

// ExactFromTriplets accumulates ts without any width bound: duplicate
// coordinates are summed in big.Int, so the result is the mathematically
// true value of every cell. Shape and bounds validation matches
// FromTriplets (same sentinels); there is no policy because nothing can
// wrap. Complexity: O(len(ts)) expected.
func ExactFromTriplets(rows, cols int, ts []Triplet) (*Exact, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("ExactFromTriplets: %dx%d: %w", rows, cols, ErrBadShape)
	}

	e := &Exact{rows: rows, cols: cols, cells: make(map[coord]*big.Int, len(ts))}
	for _, t := range ts {
		if !inBounds(t.Row, t.Col, rows, cols) {
			return nil, fmt.Errorf("ExactFromTriplets: (%d,%d) outside %dx%d: %w",
				t.Row, t.Col, rows, cols, ErrOutOfRange)
		}
		key := coord{r: t.Row, c: t.Col}
		if cur, ok := e.cells[key]; ok {
			cur.Add(cur, new(big.Int).SetUint64(t.Val))

			continue
		}
		e.cells[key] = new(big.Int).SetUint64(t.Val)
	}

	return e, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (e *Exact) Rows() int { return e.rows }

// Cols returns the number of columns. Complexity: O(1).
func (e *Exact) Cols() int { return e.cols }

// Scale returns e with every cell multiplied by k, exactly. Mirrors
// Matrix Scale so an audited pipeline and its reference stay in step.
// Complexity: O(nnz).
func (e *Exact) Scale(k uint64) *Exact {
	out := &Exact{rows: e.rows, cols: e.cols, cells: make(map[coord]*big.Int, len(e.cells))}
	factor := new(big.Int).SetUint64(k)
	for key, v := range e.cells {
		out.cells[key] = new(big.Int).Mul(v, factor)
	}

	return out
}

// At returns a copy of the true value at (row, col) and whether the
// position is occupied. Complexity: O(1) plus the copy.
func (e *Exact) At(row, col int) (*big.Int, bool) {
	v, ok := e.cells[coord{r: row, c: col}]
	if !ok {
		return nil, false
	}

	return new(big.Int).Set(v), true
}
