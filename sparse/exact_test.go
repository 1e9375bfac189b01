// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixwidth/sparse"
)

// TestExactFromTriplets_AccumulatesUnbounded sums duplicates past 2^64
// without losing a bit.
func TestExactFromTriplets_AccumulatesUnbounded(t *testing.T) {
	e, err := sparse.ExactFromTriplets(2, 2, []sparse.Triplet{
		{Row: 0, Col: 0, Val: math.MaxUint64},
		{Row: 0, Col: 0, Val: math.MaxUint64},
		{Row: 1, Col: 1, Val: 7},
	})
	require.NoError(t, err)

	v, ok := e.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, "36893488147419103230", v.String(), "2*(2^64-1)")

	v, ok = e.At(1, 1)
	require.True(t, ok)
	assert.Equal(t, "7", v.String())

	_, ok = e.At(0, 1)
	assert.False(t, ok, "unoccupied position")
}

// TestExactFromTriplets_Validation mirrors the FromTriplets sentinels.
func TestExactFromTriplets_Validation(t *testing.T) {
	_, err := sparse.ExactFromTriplets(0, 3, nil)
	assert.ErrorIs(t, err, sparse.ErrBadShape)

	_, err = sparse.ExactFromTriplets(2, 2, []sparse.Triplet{{Row: 5, Col: 0, Val: 1}})
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
}

// TestExact_Scale multiplies exactly and leaves the receiver untouched.
func TestExact_Scale(t *testing.T) {
	e, err := sparse.ExactFromTriplets(1, 1, []sparse.Triplet{{Row: 0, Col: 0, Val: math.MaxUint64}})
	require.NoError(t, err)

	scaled := e.Scale(3)
	v, ok := scaled.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, "55340232221128654845", v.String(), "3*(2^64-1)")

	orig, ok := e.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, "18446744073709551615", orig.String(), "receiver is immutable")
}

// TestExact_AtReturnsCopy guards against callers mutating internal state
// through the returned big.Int.
func TestExact_AtReturnsCopy(t *testing.T) {
	e, err := sparse.ExactFromTriplets(1, 1, []sparse.Triplet{{Row: 0, Col: 0, Val: 10}})
	require.NoError(t, err)

	v, ok := e.At(0, 0)
	require.True(t, ok)
	v.SetInt64(999)

	again, _ := e.At(0, 0)
	assert.Equal(t, "10", again.String())
}
