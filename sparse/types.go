// SPDX-License-Identifier: MIT

// Package sparse: domain types — Triplet, the coordinate key, and the
// immutable Matrix. Construction lives in builder.go, arithmetic in ops.go,
// materialization in dense.go.
package sparse

import (
	"sort"

	"github.com/katalvlaran/fixwidth/fixnum"
)

// Triplet is a single (row, col, value) record used to construct a Matrix.
// Values are raw magnitudes; the declared element width and policy are
// applied at construction time, not here.
type Triplet struct {
	Row, Col int
	Val      uint64
}

// coord is the unique (row, col) key of an occupied position. Using ints
// keeps the key compact and hash-friendly.
type coord struct {
	r int // row index
	c int // column index
}

// Matrix is an immutable sparse matrix of fixed-width unsigned integers.
// Invariant: every stored value respects the fixnum width invariant for the
// matrix's declared element width. Derived matrices (Plus, Scale, Cast) are
// new instances; the receiver is never mutated.
type Matrix struct {
	rows, cols int
	width      fixnum.Width
	entries    map[coord]fixnum.Uint // occupied positions only, keys unique
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Width returns the declared element width. Complexity: O(1).
func (m *Matrix) Width() fixnum.Width { return m.width }

// NNZ returns the number of occupied positions. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.entries) }

// At returns the stored magnitude at (row, col) and whether the position is
// occupied. Unoccupied positions read as (0, false). Complexity: O(1).
func (m *Matrix) At(row, col int) (uint64, bool) {
	v, ok := m.entries[coord{r: row, c: col}]
	if !ok {
		return 0, false
	}

	return v.Value(), true
}

// Triplets returns the occupied positions as triplets in stable
// (row, col) ascending order. Complexity: O(nnz log nnz).
func (m *Matrix) Triplets() []Triplet {
	cs := m.coords()
	ts := make([]Triplet, len(cs))
	for i, k := range cs {
		ts[i] = Triplet{Row: k.r, Col: k.c, Val: m.entries[k].Value()}
	}

	return ts
}

// Equal reports whether two matrices have identical shape, element width
// and stored entries. Complexity: O(nnz).
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols || a.width != b.width || len(a.entries) != len(b.entries) {
		return false
	}
	for k, v := range a.entries {
		if w, ok := b.entries[k]; !ok || w != v {
			return false
		}
	}

	return true
}

// coords returns the occupied keys sorted by (row, col). Every bulk
// operation iterates in this order so overflow sites are deterministic.
func (m *Matrix) coords() []coord {
	cs := make([]coord, 0, len(m.entries))
	for k := range m.entries {
		cs = append(cs, k)
	}
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].r != cs[j].r {
			return cs[i].r < cs[j].r
		}

		return cs[i].c < cs[j].c
	})

	return cs
}

// inBounds reports whether (row, col) lies inside the declared shape.
func inBounds(row, col, rows, cols int) bool {
	return row >= 0 && row < rows && col >= 0 && col < cols
}
