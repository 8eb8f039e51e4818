package radar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullsector/invaderscan/bitmatrix"
	"github.com/nullsector/invaderscan/coords"
	"github.com/nullsector/invaderscan/gridmap"
	"github.com/nullsector/invaderscan/invader"
	"github.com/nullsector/invaderscan/radar"
	"github.com/nullsector/invaderscan/scanner"
)

func mustMatrix(t *testing.T, rows [][]int) bitmatrix.Matrix {
	t.Helper()
	m, err := bitmatrix.New(rows)
	require.NoError(t, err)
	return m
}

func TestNewPlanarMapTooSmall(t *testing.T) {
	mapBits := mustMatrix(t, [][]int{{1, 0}, {0, 1}})
	gm, err := gridmap.NewPlanar(mapBits)
	require.NoError(t, err)

	inv, err := invader.New(mustMatrix(t, [][]int{{1, 1, 1}}))
	require.NoError(t, err)
	sc, err := scanner.New(inv)
	require.NoError(t, err)

	_, err = radar.NewPlanar(gm, sc)
	assert.ErrorIs(t, err, radar.ErrMapTooSmall)
}

func TestPlanarScanProducesHits(t *testing.T) {
	// S2/S3-style map, searching for a small cross invader.
	mapBits := mustMatrix(t, [][]int{
		{0, 0, 1, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	})
	gm, err := gridmap.NewPlanar(mapBits)
	require.NoError(t, err)

	inv, err := invader.New(mustMatrix(t, [][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	}))
	require.NoError(t, err)
	sc, err := scanner.New(inv)
	require.NoError(t, err)

	r, err := radar.NewPlanar(gm, sc)
	require.NoError(t, err)
	require.NoError(t, r.Scan())

	hits := r.IdentifiedInvaders()
	require.Len(t, hits, 1)
	assert.Equal(t, coords.New(1, 0, 3, 2), hits[0].Coords)
	assert.Equal(t, 1.0, hits[0].Similarity)
}

func TestPlanarScanParallelMatchesScan(t *testing.T) {
	mapBits := mustMatrix(t, [][]int{
		{0, 0, 1, 0, 0, 0, 1, 0, 0},
		{0, 1, 1, 1, 0, 1, 1, 1, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0},
		{0, 1, 1, 1, 0, 1, 1, 1, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0},
	})
	inv, err := invader.New(mustMatrix(t, [][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	}))
	require.NoError(t, err)

	runScan := func(workers int) []coords.Frame {
		gm, err := gridmap.NewPlanar(mapBits)
		require.NoError(t, err)
		sc, err := scanner.New(inv)
		require.NoError(t, err)
		r, err := radar.NewPlanar(gm, sc)
		require.NoError(t, err)
		require.NoError(t, r.ScanParallel(workers))
		out := make([]coords.Frame, len(r.IdentifiedInvaders()))
		for i, hit := range r.IdentifiedInvaders() {
			out[i] = hit.Coords
		}
		return out
	}

	sequential := runScan(1)
	parallel := runScan(4)
	assert.ElementsMatch(t, sequential, parallel)
	assert.Equal(t, sequential, parallel) // discovery order preserved after merge+sort
}
