// SPDX-License-Identifier: MIT

// Package sparse: pure elementwise operations over COO matrices.
//
// Every operation validates fail-fast, iterates occupied positions in
// stable (row, col) order, and delegates per-element arithmetic to fixnum
// so the policy contract is identical for scalar and bulk paths.
package sparse

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/fixwidth/fixnum"
)

// Plus returns the elementwise sum of a and b over the union of their
// occupied positions. Both operands must share shape and element width;
// each elementwise sum obeys the fixnum.Add contract at that width.
//
// Options: WithPolicy (default Wrap). WithWidth is ignored here — the
// result width is the operands' shared width.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrWidthMismatch, and under
// Signal a positioned *OverflowError.
// Complexity: O((nnz(a)+nnz(b)) log) for the stable ordering.
func Plus(a, b *Matrix, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if a == nil || b == nil {
		return nil, fmt.Errorf("Plus: %w", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("Plus: %dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
	}
	if a.width != b.width {
		return nil, fmt.Errorf("Plus: u%v vs u%v: %w", a.width, b.width, ErrWidthMismatch)
	}

	out := &Matrix{
		rows:    a.rows,
		cols:    a.cols,
		width:   a.width,
		entries: make(map[coord]fixnum.Uint, len(a.entries)+len(b.entries)),
	}

	// Union of occupied positions in stable order: positions present in
	// both operands are summed, singletons are copied.
	for _, k := range unionCoords(a.entries, b.entries) {
		av, aok := a.entries[k]
		bv, bok := b.entries[k]
		switch {
		case aok && bok:
			sum, err := fixnum.Add(av, bv, o.policy)
			if err != nil {
				return nil, overflowAt(k.r, k.c, err)
			}
			out.entries[k] = sum
		case aok:
			out.entries[k] = av
		default:
			out.entries[k] = bv
		}
	}

	return out, nil
}

// Scale returns m with every occupied entry multiplied by the scalar k,
// per the fixnum.Mul contract at m's width.
//
// Options: WithPolicy (default Wrap).
//
// Errors: ErrNilMatrix, and under Signal a positioned *OverflowError.
// Complexity: O(nnz log nnz).
func Scale(m *Matrix, k uint64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if m == nil {
		return nil, fmt.Errorf("Scale: %w", ErrNilMatrix)
	}

	out := &Matrix{
		rows:    m.rows,
		cols:    m.cols,
		width:   m.width,
		entries: make(map[coord]fixnum.Uint, len(m.entries)),
	}
	for _, key := range m.coords() {
		prod, err := fixnum.Mul(m.entries[key], k, o.policy)
		if err != nil {
			return nil, overflowAt(key.r, key.c, err)
		}
		out.entries[key] = prod
	}

	return out, nil
}

// Cast returns m reinterpreted at element width w via fixnum.Cast on every
// occupied entry. Widening is always lossless; narrowing follows the
// policy like any other arithmetic.
//
// Options: WithPolicy (default Wrap).
//
// Errors: ErrNilMatrix, fixnum.ErrBadWidth, and under Signal a positioned
// *OverflowError on a lossy narrowing.
// Complexity: O(nnz log nnz).
func Cast(m *Matrix, w fixnum.Width, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if m == nil {
		return nil, fmt.Errorf("Cast: %w", ErrNilMatrix)
	}
	if !w.Valid() {
		return nil, fmt.Errorf("Cast: %w", fixnum.ErrBadWidth)
	}

	out := &Matrix{
		rows:    m.rows,
		cols:    m.cols,
		width:   w,
		entries: make(map[coord]fixnum.Uint, len(m.entries)),
	}
	for _, key := range m.coords() {
		v, err := fixnum.Cast(m.entries[key], w, o.policy)
		if err != nil {
			return nil, overflowAt(key.r, key.c, err)
		}
		out.entries[key] = v
	}

	return out, nil
}

// Discrepancy records one cell whose stored (width-bounded) value diverged
// from the mathematically true accumulation. True is unbounded because at
// 64 bits the true value can exceed uint64.
type Discrepancy struct {
	Row, Col int
	Stored   uint64   // value in the audited matrix
	True     *big.Int // exact value from the reference accumulation
}

// Audit compares got against the exact reference ref cell-by-cell over the
// union of their occupied positions and reports every divergence in stable
// order. ref is the same triplet construction (and subsequent scaling)
// carried out in unbounded integers, so a non-empty report is the
// fingerprint of silent overflow in got. Exactness matters at 64 bits: a
// fixed-width reference there would wrap in lockstep with got and report
// nothing.
//
// Shapes must match. Audit performs no width-bounded arithmetic of its own.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O((nnz(got)+nnz(ref)) log).
func Audit(got *Matrix, ref *Exact) ([]Discrepancy, error) {
	if got == nil || ref == nil {
		return nil, fmt.Errorf("Audit: %w", ErrNilMatrix)
	}
	if got.rows != ref.rows || got.cols != ref.cols {
		return nil, fmt.Errorf("Audit: %dx%d vs %dx%d: %w", got.rows, got.cols, ref.rows, ref.cols, ErrShapeMismatch)
	}

	var report []Discrepancy
	for _, k := range unionCoords(got.entries, ref.cells) {
		stored, _ := got.At(k.r, k.c) // unoccupied reads as 0
		truth, ok := ref.At(k.r, k.c)
		if !ok {
			truth = new(big.Int)
		}
		if truth.Cmp(new(big.Int).SetUint64(stored)) != 0 {
			report = append(report, Discrepancy{Row: k.r, Col: k.c, Stored: stored, True: truth})
		}
	}

	return report, nil
}

// unionCoords merges the occupied keys of a and b into one slice sorted by
// (row, col). Complexity: O((len(a)+len(b)) log).
func unionCoords[A, B any](a map[coord]A, b map[coord]B) []coord {
	seen := make(map[coord]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}
	u := make([]coord, 0, len(seen))
	for k := range seen {
		u = append(u, k)
	}
	sort.Slice(u, func(i, j int) bool {
		if u[i].r != u[j].r {
			return u[i].r < u[j].r
		}

		return u[i].c < u[j].c
	})

	return u
}
