// Package fixwidth is a small diagnostic toolkit for making silent integer
// overflow visible.
//
// 🚀 What is fixwidth?
//
//	Fixed-width unsigned arithmetic wraps around silently: 1 + 255 is 0 in
//	eight bits, and 14 * 20 is 24. Numeric libraries routinely accumulate
//	sparse-matrix triplets with exactly this arithmetic, so a dataset can
//	lose its high-order bits before any real computation even starts.
//	fixwidth reproduces that behavior on purpose — and makes every
//	occurrence detectable and reportable.
//
// The repository is organized under two library packages and one command:
//
//	fixnum/ — bounded unsigned integers (8/16/32/64 bit) with an explicit,
//	          per-operation overflow policy: wrap silently or signal with
//	          the true value and the representable maximum.
//	sparse/ — immutable coordinate-triplet matrices over fixnum values:
//	          duplicate coordinates accumulate at construction (the classic
//	          first overflow site), elementwise sum, scalar multiply,
//	          width casts, dense materialization, and an audit that reports
//	          every cell whose stored value diverged from the true one.
//
//	cmd/overflow-demo — reads "row,col,value" triplets from stdin, builds
//	          the matrix at a declared width, and prints the wrapped result
//	          next to the true values, so the discrepancy is undeniable.
//
// ✨ Why choose fixwidth?
//
//   - Explicit policy – overflow handling is an argument, never ambient
//     global state, so scalar and bulk operations behave identically
//   - Exact reporting – signaled errors carry position, true value and max
//   - Deterministic – single-threaded, pure functions, stable iteration
//
// See the fixnum and sparse package docs for contracts and examples.
package fixwidth
