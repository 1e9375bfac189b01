// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for construction and arithmetic.
//
// Design goals:
//   - Deterministic behavior: no global state; the overflow policy is part
//     of each call, never a process-wide mode another call can poison.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); user-triggered conditions return errors.
//   - Reusability: options fields are unexported; public entry points
//     consume ...Option and resolve them via gatherOptions.
package sparse

import "github.com/katalvlaran/fixwidth/fixnum"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWidth is the element width assumed when WithWidth is absent.
	// 64 bits is the "nothing wraps in practice" reference width the audit
	// path relies on.
	DefaultWidth = fixnum.W64

	// DefaultPolicy is the overflow policy assumed when WithPolicy is
	// absent. Wrap mirrors the numeric-library default under demonstration;
	// pass WithPolicy(fixnum.Signal) to fail loudly instead.
	DefaultPolicy = fixnum.Wrap
)

// Internal panic messages (no magic strings).
const (
	panicWidthInvalid  = "sparse: WithWidth: width must be 8, 16, 32 or 64"
	panicPolicyInvalid = "sparse: WithPolicy: policy must be Wrap or Signal"
)

// Option mutates internal options. Safe to apply repeatedly; last writer
// wins. Constructors panic only on invalid parameters.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Intentionally unexported to prevent external mutation.
type options struct {
	width  fixnum.Width  // element width; DefaultWidth
	policy fixnum.Policy // overflow policy; DefaultPolicy
}

// WithWidth declares the element bit width for the operation.
// Panics with a stable message if w is not a supported width.
// Complexity: O(1).
func WithWidth(w fixnum.Width) Option {
	if !w.Valid() {
		panic(panicWidthInvalid)
	}

	return func(o *options) { o.width = w }
}

// WithPolicy selects the overflow policy for the operation: Wrap reduces
// out-of-range results modulo 2^width, Signal fails with a positioned
// *OverflowError. Panics with a stable message if p is neither.
// Complexity: O(1).
func WithPolicy(p fixnum.Policy) Option {
	if !p.Valid() {
		panic(panicPolicyInvalid)
	}

	return func(o *options) { o.policy = p }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults. Canonical internal entry; last-writer-wins semantics.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) options {
	o := options{
		width:  DefaultWidth,
		policy: DefaultPolicy,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
