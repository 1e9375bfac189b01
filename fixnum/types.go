// Package fixnum: domain types — Width, Policy and the immutable Uint value.
// Arithmetic kernels live in ops.go; sentinel errors in errors.go.
package fixnum

import (
	"fmt"
	"math"
	"strconv"
)

// Width is a declared bit width for a bounded unsigned integer.
// Only 8, 16, 32 and 64 are valid; everything else fails ErrBadWidth.
type Width uint8

const (
	// W8 bounds values to [0, 255].
	W8 Width = 8
	// W16 bounds values to [0, 65535].
	W16 Width = 16
	// W32 bounds values to [0, 2^32-1].
	W32 Width = 32
	// W64 bounds values to [0, 2^64-1].
	W64 Width = 64
)

// Valid reports whether w is one of the four supported widths.
// Complexity: O(1).
func (w Width) Valid() bool {
	return w == W8 || w == W16 || w == W32 || w == W64
}

// Max returns the largest value representable at width w (2^w - 1).
// For an invalid width the result is unspecified; callers validate first.
// Complexity: O(1).
func (w Width) Max() uint64 {
	return math.MaxUint64 >> (64 - uint(w))
}

// String renders the width as its decimal bit count ("8", "16", ...).
func (w Width) String() string {
	return strconv.Itoa(int(w))
}

// ParseWidth converts a decimal string ("8", "16", "32", "64") to a Width.
// Returns ErrBadWidth for anything else.
func ParseWidth(s string) (Width, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("ParseWidth: %q: %w", s, ErrBadWidth)
	}
	w := Width(n)
	if !w.Valid() {
		return 0, fmt.Errorf("ParseWidth: %q: %w", s, ErrBadWidth)
	}

	return w, nil
}

// Policy selects what happens when a true result exceeds the declared width.
// It is passed explicitly into every operation; there is no process state.
type Policy uint8

const (
	// Wrap silently reduces the true result modulo 2^width.
	Wrap Policy = iota
	// Signal fails with *OverflowError instead of storing a wrapped value.
	Signal
)

// Valid reports whether p is Wrap or Signal.
func (p Policy) Valid() bool {
	return p == Wrap || p == Signal
}

// String renders the policy in CLI form ("wrap" or "signal").
func (p Policy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Signal:
		return "signal"
	default:
		return "policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePolicy converts "wrap" or "signal" to a Policy.
// Returns ErrBadPolicy for anything else.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "wrap":
		return Wrap, nil
	case "signal":
		return Signal, nil
	default:
		return 0, fmt.Errorf("ParsePolicy: %q: %w", s, ErrBadPolicy)
	}
}

// Uint is an immutable unsigned integer bounded by a declared width.
// Invariant: value <= width.Max() for every constructed Uint; operations
// never store an out-of-range magnitude, whichever policy is in force.
type Uint struct {
	v uint64 // magnitude, always within the declared width
	w Width  // declared bit width
}

// New constructs a Uint from a raw magnitude at width w under policy p.
// Stage 1 (Validate): width and policy must be legal.
// Stage 2 (Execute): apply policy if v exceeds w.Max() — wrap reduces
// modulo 2^w, signal fails with *OverflowError.
// Complexity: O(1).
func New(v uint64, w Width, p Policy) (Uint, error) {
	if !w.Valid() {
		return Uint{}, ErrBadWidth
	}
	if !p.Valid() {
		return Uint{}, ErrBadPolicy
	}

	return resolve(opNew, 0, v, w, p)
}

// Value returns the stored magnitude.
func (x Uint) Value() uint64 { return x.v }

// Width returns the declared bit width.
func (x Uint) Width() Width { return x.w }

// String renders the value with its width, e.g. "255:u8".
func (x Uint) String() string {
	return strconv.FormatUint(x.v, 10) + ":u" + strconv.Itoa(int(x.w))
}
