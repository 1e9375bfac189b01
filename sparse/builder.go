// SPDX-License-Identifier: MIT

// Package sparse: matrix construction from coordinate triplets,
// preserving the accumulation-at-construction semantics under test and
// enforcing strict fail-fast validation.
package sparse

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/fixwidth/fixnum"
)

// FromTriplets builds a rows×cols Matrix from coordinate triplets.
//
// Duplicate coordinates are accumulated sequentially with fixnum.Add in
// input order — this reproduces the construction-time accumulation that is
// the first overflow site in the demonstrated defect. Each raw value is
// first admitted through fixnum.New at the declared width, so an
// out-of-range literal is itself subject to the policy.
//
// Options: WithWidth (default 64), WithPolicy (default Wrap).
//
// Stage 1 (Validate): rows/cols must be positive; every coordinate must lie
// inside the shape.
// Stage 2 (Execute): admit values and accumulate duplicates, applying the
// policy at every step.
// Stage 3 (Finalize): return the immutable Matrix or the first error.
//
// Errors: ErrBadShape, ErrOutOfRange, and under Signal a positioned
// *OverflowError identifying the exact accumulation that overflowed.
// Complexity: O(len(ts)) expected.
func FromTriplets(rows, cols int, ts []Triplet, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: shape must be positive in both dimensions.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("FromTriplets: %dx%d: %w", rows, cols, ErrBadShape)
	}

	m := &Matrix{
		rows:    rows,
		cols:    cols,
		width:   o.width,
		entries: make(map[coord]fixnum.Uint, len(ts)),
	}

	// Stage 2: admit and accumulate in input order.
	for _, t := range ts {
		if !inBounds(t.Row, t.Col, rows, cols) {
			return nil, fmt.Errorf("FromTriplets: (%d,%d) outside %dx%d: %w",
				t.Row, t.Col, rows, cols, ErrOutOfRange)
		}

		// Raw literal enters the declared width under the caller's policy.
		v, err := fixnum.New(t.Val, o.width, o.policy)
		if err != nil {
			return nil, overflowAt(t.Row, t.Col, err)
		}

		key := coord{r: t.Row, c: t.Col}
		if cur, ok := m.entries[key]; ok {
			sum, addErr := fixnum.Add(cur, v, o.policy)
			if addErr != nil {
				return nil, overflowAt(t.Row, t.Col, addErr)
			}
			Logger().Debug("accumulate",
				zap.Int("row", t.Row),
				zap.Int("col", t.Col),
				zap.Uint64("have", cur.Value()),
				zap.Uint64("add", v.Value()),
				zap.Uint64("stored", sum.Value()),
			)
			m.entries[key] = sum

			continue
		}
		m.entries[key] = v
	}

	return m, nil
}
