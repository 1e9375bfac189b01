// Package fixnum implements bounded unsigned integers with explicit
// overflow semantics.
//
// A Uint couples a magnitude with a declared bit width (8, 16, 32 or 64).
// Every arithmetic operation — Add, Mul, Cast, and literal construction via
// New — computes the mathematically true result first and then consults a
// Policy passed by the caller:
//
//   - Wrap   — reduce the true result modulo 2^width and continue silently.
//     High-order information is lost; this is the classic numeric-library
//     default under demonstration.
//   - Signal — fail with *OverflowError carrying the true result and the
//     representable maximum. Nothing wrapped is ever stored.
//
// Overflow is always judged against the declared width of the operands,
// never against the width the result would need: a growing precision demand
// is invisible unless it is checked at the current width. That property is
// the entire point of this package.
//
// The policy is deliberately a per-operation argument instead of a mutable
// process-wide mode. Ambient "error state" configuration is exactly the
// hazard the upstream demonstration exposes: a setting observed by scalar
// operations but silently ignored by bulk ones. Threading the policy makes
// it uniformly effective and removes hidden cross-call coupling.
//
// All values are immutable; operations return new Uint instances. The
// package is allocation-free on the happy path and deterministic.
package fixnum
