package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/morph"
	"github.com/katalvlaran/binmorph/neighbors"
)

// assertCounts compares a count image to expected values given as rows[y][x].
func assertCounts(t *testing.T, want [][]uint8, got *binimg.ByteImage) {
	t.Helper()
	for y, row := range want {
		for x, v := range row {
			c, err := got.At(x, y)
			require.NoError(t, err)
			assert.Equal(t, v, c, "count at (%d,%d)", x, y)
		}
	}
}

func TestCountNeighbors_Modes(t *testing.T) {
	img := mustImage(t, [][]int{
		{1, 0, 0},
		{0, 1, 1},
		{0, 0, 0},
	})

	// The center pixel counts along with its neighbors.
	out, err := morph.CountNeighbors(img, morph.WithMode(morph.CountAll))
	require.NoError(t, err)
	assertCounts(t, [][]uint8{
		{2, 3, 2},
		{2, 3, 2},
		{1, 2, 2},
	}, out)

	// Foreground mode zeroes the background without counting.
	out, err = morph.CountNeighbors(img)
	require.NoError(t, err)
	assertCounts(t, [][]uint8{
		{2, 0, 0},
		{0, 3, 2},
		{0, 0, 0},
	}, out)
}

func TestCountNeighbors_EdgeObject(t *testing.T) {
	img := mustImage(t, [][]int{
		{1, 0, 0},
		{0, 1, 1},
		{0, 0, 0},
	})

	// Corners miss five of their eight neighbors, edge centers three; each
	// missing neighbor counts as object.
	out, err := morph.CountNeighbors(img,
		morph.WithMode(morph.CountAll), morph.WithEdge(morph.EdgeObject))
	require.NoError(t, err)
	assertCounts(t, [][]uint8{
		{7, 6, 7},
		{5, 3, 5},
		{6, 5, 7},
	}, out)
}

func TestCountNeighbors_Connectivity1(t *testing.T) {
	img := mustImage(t, [][]int{
		{1, 0, 0},
		{0, 1, 1},
		{0, 0, 0},
	})

	out, err := morph.CountNeighbors(img,
		morph.WithMode(morph.CountAll), morph.WithConnectivity(1))
	require.NoError(t, err)
	assertCounts(t, [][]uint8{
		{1, 2, 1},
		{2, 2, 2},
		{0, 1, 1},
	}, out)
}

func TestMajorityVote_Smoothing(t *testing.T) {
	full, err := binimg.New(3, 3)
	require.NoError(t, err)
	full.Fill(true)

	// With background outside, corners see only four object pixels out of a
	// nine-strong neighborhood and flip off.
	out, err := morph.MajorityVote(full)
	require.NoError(t, err)
	want := mustImage(t, [][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})
	assert.True(t, out.Equal(want))

	// With object outside, the full image is stable.
	out, err = morph.MajorityVote(full, morph.WithEdge(morph.EdgeObject))
	require.NoError(t, err)
	assert.True(t, out.Equal(full))
}

func TestMajorityVote_RemovesSpecks(t *testing.T) {
	img, err := binimg.New(5, 5)
	require.NoError(t, err)
	require.NoError(t, img.Set(true, 2, 2))

	out, err := morph.MajorityVote(img)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count())
}

func TestCountNeighbors_WorkersAgree(t *testing.T) {
	img, err := binimg.New(33, 17)
	require.NoError(t, err)
	scatter(img, 11)

	seq, err := morph.CountNeighbors(img, morph.WithMode(morph.CountAll))
	require.NoError(t, err)
	par, err := morph.CountNeighbors(img,
		morph.WithMode(morph.CountAll), morph.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, seq.Values(), par.Values())

	mseq, err := morph.MajorityVote(img)
	require.NoError(t, err)
	mpar, err := morph.MajorityVote(img, morph.WithWorkers(8))
	require.NoError(t, err)
	assert.True(t, mseq.Equal(mpar))
}

func TestCount_Validation(t *testing.T) {
	img, err := binimg.New(4, 4)
	require.NoError(t, err)

	_, err = morph.CountNeighbors(nil)
	assert.ErrorIs(t, err, binimg.ErrNotForged)

	_, err = morph.CountNeighbors(img, morph.WithConnectivity(-1))
	assert.ErrorIs(t, err, neighbors.ErrBadConnectivity)

	_, err = morph.CountNeighbors(img, morph.WithConnectivity(3))
	assert.ErrorIs(t, err, neighbors.ErrBadConnectivity)

	_, err = morph.CountNeighbors(img, morph.WithMode(morph.CountMode("some")))
	assert.ErrorIs(t, err, morph.ErrBadCountMode)

	_, err = morph.CountNeighbors(img, morph.WithEdge(morph.EdgeSpecial))
	assert.ErrorIs(t, err, morph.ErrBadEdgeCondition)

	_, err = morph.MajorityVote(nil)
	assert.ErrorIs(t, err, binimg.ErrNotForged)

	_, err = morph.MajorityVote(img, morph.WithConnectivity(5))
	assert.ErrorIs(t, err, neighbors.ErrBadConnectivity)
}
