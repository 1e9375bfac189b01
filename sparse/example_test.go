// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/fixwidth/fixnum"
	"github.com/katalvlaran/fixwidth/sparse"
)

// ExampleFromTriplets demonstrates accumulation-at-construction: the two
// records at (0,0) sum to 300, which an 8-bit matrix silently stores as 44.
func ExampleFromTriplets() {
	ts := []sparse.Triplet{
		{Row: 0, Col: 0, Val: 200},
		{Row: 0, Col: 0, Val: 100},
		{Row: 1, Col: 1, Val: 7},
	}

	m, _ := sparse.FromTriplets(2, 2, ts, sparse.WithWidth(fixnum.W8))
	fmt.Print(m.ToDense())
	// Output:
	// [44, 0]
	// [0, 7]
}

// ExampleAudit shows how comparing against the exact reference exposes the
// cell that wrapped.
func ExampleAudit() {
	ts := []sparse.Triplet{
		{Row: 2, Col: 2, Val: 1},
		{Row: 2, Col: 2, Val: 255},
	}

	got, _ := sparse.FromTriplets(3, 3, ts, sparse.WithWidth(fixnum.W8))
	ref, _ := sparse.ExactFromTriplets(3, 3, ts)

	report, _ := sparse.Audit(got, ref)
	for _, d := range report {
		fmt.Printf("(%d,%d): stored %d, true %d\n", d.Row, d.Col, d.Stored, d.True)
	}
	// Output:
	// (2,2): stored 0, true 256
}

// ExampleFromTriplets_signal shows the Signal policy refusing to store a
// wrapped value, reporting position, true value and maximum instead.
func ExampleFromTriplets_signal() {
	ts := []sparse.Triplet{
		{Row: 2, Col: 2, Val: 1},
		{Row: 2, Col: 2, Val: 255},
	}

	_, err := sparse.FromTriplets(3, 3, ts,
		sparse.WithWidth(fixnum.W8), sparse.WithPolicy(fixnum.Signal))
	fmt.Println(err)
	// Output:
	// sparse: overflow at (2,2): true value 256 exceeds max 255
}
