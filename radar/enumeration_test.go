package radar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullsector/invaderscan/bitmatrix"
	"github.com/nullsector/invaderscan/coords"
	"github.com/nullsector/invaderscan/gridmap"
	"github.com/nullsector/invaderscan/invader"
	"github.com/nullsector/invaderscan/scanner"
)

func matrix3x4(t *testing.T) bitmatrix.Matrix {
	t.Helper()
	m, err := bitmatrix.New([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)
	return m
}

func invader2x3(t *testing.T) invader.Invader {
	t.Helper()
	m, err := bitmatrix.New([][]int{{1, 1}, {1, 1}, {1, 1}})
	require.NoError(t, err)
	inv, err := invader.New(m)
	require.NoError(t, err)
	return inv
}

// Enumeration order for a 3x4 map and a 2x3 invader: left-to-right,
// top-to-bottom, advancing one column at a time.
func TestPlanarNextEnumerationOrder(t *testing.T) {
	gm, err := gridmap.NewPlanar(matrix3x4(t))
	require.NoError(t, err)
	sc, err := scanner.New(invader2x3(t))
	require.NoError(t, err)
	r, err := NewPlanar(gm, sc)
	require.NoError(t, err)

	var got []coords.Frame
	for {
		f, ok := r.next()
		if !ok {
			break
		}
		got = append(got, f)
	}

	want := []coords.Frame{
		coords.New(0, 0, 1, 2),
		coords.New(1, 0, 2, 2),
		coords.New(0, 1, 1, 3),
		coords.New(1, 1, 2, 3),
	}
	assert.Equal(t, want, got)
}

// A planar radar enumerates exactly (W-w+1)*(H-h+1) windows.
func TestPlanarNextWindowCount(t *testing.T) {
	gm, err := gridmap.NewPlanar(matrix3x4(t))
	require.NoError(t, err)
	sc, err := scanner.New(invader2x3(t))
	require.NoError(t, err)
	r, err := NewPlanar(gm, sc)
	require.NoError(t, err)

	count := 0
	for {
		_, ok := r.next()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, (3-2+1)*(4-3+1), count)
}

// A toroidal radar enumerates exactly W*H windows, in row-major order,
// one per starting cell on the map.
func TestSphericalNextWindowCount(t *testing.T) {
	gm, err := gridmap.NewSpherical(matrix3x4(t))
	require.NoError(t, err)
	sc, err := scanner.New(invader2x3(t))
	require.NoError(t, err)
	r, err := NewSpherical(gm, sc)
	require.NoError(t, err)

	var got []coords.Frame
	for {
		f, ok := r.next()
		if !ok {
			break
		}
		got = append(got, f)
	}

	assert.Equal(t, 3*4, len(got))
	assert.Equal(t, coords.New(0, 0, 1, 2), got[0])
	assert.Equal(t, coords.New(2, 3, 0, 1), got[len(got)-1])
}
