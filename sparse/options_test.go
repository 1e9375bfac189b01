// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixwidth/fixnum"
	"github.com/katalvlaran/fixwidth/sparse"
)

// TestOptions_Defaults verifies the documented zero-option behavior:
// 64-bit elements under the Wrap policy.
func TestOptions_Defaults(t *testing.T) {
	m, err := sparse.FromTriplets(1, 1, []sparse.Triplet{{Row: 0, Col: 0, Val: 1}})
	require.NoError(t, err)
	assert.Equal(t, sparse.DefaultWidth, m.Width())
	assert.Equal(t, fixnum.W64, sparse.DefaultWidth)
	assert.Equal(t, fixnum.Wrap, sparse.DefaultPolicy)
}

// TestOptions_LastWriterWins confirms repeated options resolve in order.
func TestOptions_LastWriterWins(t *testing.T) {
	m, err := sparse.FromTriplets(1, 1, nil,
		sparse.WithWidth(fixnum.W8), sparse.WithWidth(fixnum.W32))
	require.NoError(t, err)
	assert.Equal(t, fixnum.W32, m.Width())
}

// TestOptions_PanicOnNonsense ensures option constructors reject
// programmer error loudly, per package convention.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.PanicsWithValue(t, "sparse: WithWidth: width must be 8, 16, 32 or 64", func() {
		sparse.WithWidth(fixnum.Width(12))
	})
	assert.PanicsWithValue(t, "sparse: WithPolicy: policy must be Wrap or Signal", func() {
		sparse.WithPolicy(fixnum.Policy(9))
	})
}
