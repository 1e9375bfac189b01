package fixnum

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrOverflow indicates that a true arithmetic result exceeded the
	// representable maximum of the declared width under the Signal policy.
	// Match with errors.Is; inspect details via errors.As(*OverflowError).
	ErrOverflow = errors.New("fixnum: arithmetic overflow")
	// ErrWidthMismatch indicates that two operands declare different widths.
	ErrWidthMismatch = errors.New("fixnum: operand widths differ")
	// ErrBadWidth indicates a width other than 8, 16, 32 or 64.
	ErrBadWidth = errors.New("fixnum: width must be 8, 16, 32 or 64")
	// ErrBadPolicy indicates a policy value other than Wrap or Signal.
	ErrBadPolicy = errors.New("fixnum: unknown overflow policy")
)

// OverflowError reports a signaled overflow with full diagnostic payload:
// the operation that produced it, the true (non-wrapped) result, and the
// maximum representable value at the declared width.
//
// The true result is kept as a 128-bit quantity (Hi:Lo) because a 64-bit
// sum or product can itself exceed 64 bits; for widths below 64, Hi is
// always zero and Lo is exact.
type OverflowError struct {
	Op  string // "new", "add", "mul" or "cast"
	Hi  uint64 // high 64 bits of the true result
	Lo  uint64 // low 64 bits of the true result
	Max uint64 // representable maximum at the declared width
}

// True returns the exact mathematical result as a big.Int (Hi<<64 | Lo).
func (e *OverflowError) True() *big.Int {
	t := new(big.Int).SetUint64(e.Hi)
	t.Lsh(t, 64)

	return t.Or(t, new(big.Int).SetUint64(e.Lo))
}

// Error renders the offending operation, true value and maximum.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("fixnum: %s overflow: true value %s exceeds max %d", e.Op, e.True(), e.Max)
}

// Is reports ErrOverflow as the sentinel identity of every OverflowError,
// so errors.Is(err, ErrOverflow) matches regardless of payload.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}
