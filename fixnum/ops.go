// Package fixnum: arithmetic kernels.
//
// Every kernel computes the mathematically true result first — carry-exact
// even at 64 bits, via math/bits — and only then consults the caller's
// Policy. There is no path on which a wrapped value is stored while the
// caller asked for signaling, and no path on which signaling mutates state.
package fixnum

import "math/bits"

// Operation tags carried inside OverflowError.Op.
const (
	opNew  = "new"
	opAdd  = "add"
	opMul  = "mul"
	opCast = "cast"
)

// resolve maps a true 128-bit result (hi:lo) at width w onto a Uint under
// policy p. Shared tail of every kernel.
// Stage 1 (Detect): overflowed iff hi != 0 or lo > w.Max().
// Stage 2 (Apply): wrap reduces modulo 2^w; signal returns *OverflowError
// with the full true value and the representable maximum.
// Complexity: O(1).
func resolve(op string, hi, lo uint64, w Width, p Policy) (Uint, error) {
	max := w.Max()
	if hi == 0 && lo <= max {
		return Uint{v: lo, w: w}, nil // true result fits; no policy consulted
	}

	switch p {
	case Wrap:
		// Reduction modulo 2^w keeps only the low w bits of the true result.
		return Uint{v: lo & max, w: w}, nil
	case Signal:
		return Uint{}, &OverflowError{Op: op, Hi: hi, Lo: lo, Max: max}
	default:
		return Uint{}, ErrBadPolicy
	}
}

// Add returns a + b at the operands' shared width under policy p.
// Overflow is judged against the declared width of a and b, not against the
// width the true sum would need.
//
// Errors: ErrWidthMismatch if the operands declare different widths,
// ErrBadPolicy for an unknown policy, *OverflowError under Signal.
// Complexity: O(1).
func Add(a, b Uint, p Policy) (Uint, error) {
	if !p.Valid() {
		return Uint{}, ErrBadPolicy
	}
	if a.w != b.w {
		return Uint{}, ErrWidthMismatch
	}
	// True sum as a 65-bit quantity: carry becomes the high word.
	lo, carry := bits.Add64(a.v, b.v, 0)

	return resolve(opAdd, carry, lo, a.w, p)
}

// Mul returns a * k (scalar multiply) at a's width under policy p.
// The true product is computed as a full 128-bit quantity, so detection is
// exact for every width including 64.
//
// Errors: ErrBadPolicy for an unknown policy, *OverflowError under Signal.
// Complexity: O(1).
func Mul(a Uint, k uint64, p Policy) (Uint, error) {
	if !p.Valid() {
		return Uint{}, ErrBadPolicy
	}
	hi, lo := bits.Mul64(a.v, k)

	return resolve(opMul, hi, lo, a.w, p)
}

// Cast reinterprets a at width w. Widening copies the magnitude verbatim
// and never loses information; narrowing follows the same policy contract
// as arithmetic when the value does not fit.
//
// Round-trip property: Cast(Cast(a, w2), w) == a whenever w2 >= w, and also
// for w2 < w when no narrowing overflow occurred.
//
// Errors: ErrBadWidth for an unsupported target width, ErrBadPolicy for an
// unknown policy, *OverflowError under Signal on a lossy narrowing.
// Complexity: O(1).
func Cast(a Uint, w Width, p Policy) (Uint, error) {
	if !w.Valid() {
		return Uint{}, ErrBadWidth
	}
	if !p.Valid() {
		return Uint{}, ErrBadPolicy
	}

	return resolve(opCast, 0, a.v, w, p)
}
