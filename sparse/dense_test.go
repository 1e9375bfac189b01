// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixwidth/fixnum"
	"github.com/katalvlaran/fixwidth/sparse"
)

// TestToDense_Materialization checks zeros at unoccupied positions and the
// stored (already wrapped) values everywhere else.
func TestToDense_Materialization(t *testing.T) {
	m := build(t, 2, 3, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 44},
		{Row: 1, Col: 2, Val: 7},
	}, sparse.WithWidth(fixnum.W8))

	d := m.ToDense()
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(44), v)

	v, err = d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v, "unoccupied reads as zero")

	v, err = d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)
}

// TestDense_AtBounds returns ErrOutOfRange outside the grid.
func TestDense_AtBounds(t *testing.T) {
	d := build(t, 2, 2, nil).ToDense()

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := d.At(idx[0], idx[1])
		assert.ErrorIs(t, err, sparse.ErrOutOfRange, "At(%d,%d)", idx[0], idx[1])
	}
}

// TestDense_String pins the bracketed row rendering the CLI prints.
func TestDense_String(t *testing.T) {
	m := build(t, 2, 2, []sparse.Triplet{
		{Row: 0, Col: 1, Val: 3},
		{Row: 1, Col: 0, Val: 255},
	}, sparse.WithWidth(fixnum.W8))

	assert.Equal(t, "[0, 3]\n[255, 0]\n", m.ToDense().String())
}
