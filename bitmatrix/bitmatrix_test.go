package bitmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullsector/invaderscan/bitmatrix"
)

func TestNew(t *testing.T) {
	m, err := bitmatrix.New([][]int{{0, 1, 1}, {1, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, uint8(1), m.At(1, 0))
	assert.Equal(t, uint8(0), m.At(0, 0))
}

func TestNewEmpty(t *testing.T) {
	_, err := bitmatrix.New(nil)
	assert.ErrorIs(t, err, bitmatrix.ErrEmpty)

	_, err = bitmatrix.New([][]int{{}})
	assert.ErrorIs(t, err, bitmatrix.ErrEmpty)
}

func TestNewRagged(t *testing.T) {
	_, err := bitmatrix.New([][]int{{0, 1}, {1}})
	assert.ErrorIs(t, err, bitmatrix.ErrRaggedRows)
}

func TestNewInvalidBit(t *testing.T) {
	_, err := bitmatrix.New([][]int{{0, 2}})
	assert.ErrorIs(t, err, bitmatrix.ErrInvalidBit)
}

func TestPopCount(t *testing.T) {
	m, err := bitmatrix.New([][]int{{1, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, 4, m.PopCount())
}

func TestWrappedRow(t *testing.T) {
	m, err := bitmatrix.New([][]int{{1, 0, 0, 1, 1}})
	require.NoError(t, err)

	// non-wrapping
	assert.Equal(t, []uint8{0, 1}, m.WrappedRow(0, 2, 3))
	// wrapping: columns 3,4 then 0,1
	assert.Equal(t, []uint8{1, 1, 1, 0}, m.WrappedRow(0, 3, 1))
}

func TestRows(t *testing.T) {
	want := [][]int{{0, 1}, {1, 1}}
	m, err := bitmatrix.New(want)
	require.NoError(t, err)
	assert.Equal(t, want, m.Rows())
}
