// Package sparse provides an immutable coordinate-triplet (COO) matrix of
// fixed-width unsigned integers, built to expose where overflow happens.
//
// The sparse package provides:
//
//   - FromTriplets — construction from (row, col, value) records where
//     duplicate coordinates are accumulated with fixnum.Add in input order.
//     This accumulation step is the classic site of the first silent
//     overflow in numeric libraries.
//   - Plus / Scale / Cast — elementwise sum over the union of occupied
//     positions, scalar multiply, and width reinterpretation, all obeying
//     the fixnum per-operation policy contract.
//   - ToDense — pure materialization into a rows×cols grid with zeros at
//     unoccupied positions; performs no arithmetic and no checks.
//   - Audit — cell-by-cell comparison of a wrapped matrix against an
//     Exact (unbounded big.Int) reference accumulation, reporting every
//     discrepancy at any width, 64 bits included.
//
// Matrices are immutable: every operation is a pure function from input
// matrices and policy to a new matrix or a signaled error. Overflow errors
// carry the offending position alongside the true value and the
// representable maximum. Iteration orders are stable (row, then column),
// so results and error sites are deterministic.
//
// The package is single-threaded by design; no concurrency guarantees are
// made or needed for a diagnostic path.
package sparse
