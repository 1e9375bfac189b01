// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// sparse package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions;
// panics are reserved for programmer errors in option constructors.

package sparse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fixwidth/fixnum"
)

// Every message is prefixed with "sparse: ..." for consistency and easy
// grepping across logs. Sentinels are wrapped with fmt.Errorf("ctx: %w")
// only at call sites where context is essential; errors.Is still matches.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a triplet coordinate outside the declared shape.
	ErrOutOfRange = errors.New("sparse: coordinate out of range")

	// ErrShapeMismatch indicates incompatible dimensions between operands.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrWidthMismatch indicates operands declaring different element widths.
	ErrWidthMismatch = errors.New("sparse: element width mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrMalformedTriplet indicates a triplet line that failed to parse.
	ErrMalformedTriplet = errors.New("sparse: malformed triplet")
)

// OverflowError attaches the offending matrix position to a signaled
// fixnum overflow. errors.Is(err, fixnum.ErrOverflow) matches through
// Unwrap; errors.As recovers either layer.
type OverflowError struct {
	Row, Col int
	Err      *fixnum.OverflowError
}

// Error renders position, true value and maximum in one line.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("sparse: overflow at (%d,%d): true value %s exceeds max %d",
		e.Row, e.Col, e.Err.True(), e.Err.Max)
}

// Unwrap exposes the underlying fixnum error for errors.Is / errors.As.
func (e *OverflowError) Unwrap() error { return e.Err }

// overflowAt wraps a fixnum overflow with its matrix position; any other
// error passes through unmodified.
func overflowAt(row, col int, err error) error {
	var oe *fixnum.OverflowError
	if errors.As(err, &oe) {
		return &OverflowError{Row: row, Col: col, Err: oe}
	}

	return err
}
