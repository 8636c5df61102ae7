package binimg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binmorph/binimg"
)

// mustImage builds a 2-D image from rows of 0/1 values, rows[y][x].
func mustImage(t *testing.T, rows [][]int) *binimg.Image {
	t.Helper()
	require.NotEmpty(t, rows)
	img, err := binimg.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, len(rows[0]))
		for x, v := range row {
			require.NoError(t, img.Set(v != 0, x, y))
		}
	}
	return img
}

func TestPixelwiseCombinators(t *testing.T) {
	a := mustImage(t, [][]int{
		{1, 1, 0},
		{0, 1, 0},
	})
	b := mustImage(t, [][]int{
		{1, 0, 0},
		{0, 1, 1},
	})

	and, err := binimg.And(a, b)
	require.NoError(t, err)
	assert.True(t, and.Equal(mustImage(t, [][]int{
		{1, 0, 0},
		{0, 1, 0},
	})))

	or, err := binimg.Or(a, b)
	require.NoError(t, err)
	assert.True(t, or.Equal(mustImage(t, [][]int{
		{1, 1, 0},
		{0, 1, 1},
	})))

	xor, err := binimg.Xor(a, b)
	require.NoError(t, err)
	assert.True(t, xor.Equal(mustImage(t, [][]int{
		{0, 1, 0},
		{0, 0, 1},
	})))

	not, err := binimg.Not(a)
	require.NoError(t, err)
	assert.True(t, not.Equal(mustImage(t, [][]int{
		{0, 0, 1},
		{1, 0, 1},
	})))

	// Double complement restores the original.
	back, err := binimg.Not(not)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))
}

func TestCombinators_Errors(t *testing.T) {
	a := mustImage(t, [][]int{{1, 0}})
	c := mustImage(t, [][]int{{1}, {0}})

	_, err := binimg.And(a, c)
	assert.ErrorIs(t, err, binimg.ErrSizeMismatch)
	_, err = binimg.Xor(a, nil)
	assert.ErrorIs(t, err, binimg.ErrNotForged)
	_, err = binimg.Not(nil)
	assert.ErrorIs(t, err, binimg.ErrNotForged)
}

func TestExtend(t *testing.T) {
	in := mustImage(t, [][]int{
		{1, 0},
		{0, 1},
	})

	out, err := binimg.Extend(in, []int{1, 2}, false)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, out.Sizes())
	assert.Equal(t, 2, out.Count())

	on, err := out.At(1, 2) // input (0,0) shifted by the border
	require.NoError(t, err)
	assert.True(t, on)
	on, err = out.At(2, 3)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestExtend_ObjectFill(t *testing.T) {
	in, err := binimg.New(1) // one background pixel on a line
	require.NoError(t, err)
	out, err := binimg.Extend(in, []int{1}, true)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, out.Sizes())
	assert.Equal(t, 2, out.Count(), "margin carries the object value")
}

func TestExtend_Errors(t *testing.T) {
	in := mustImage(t, [][]int{{1}})
	_, err := binimg.Extend(in, []int{1}, false)
	assert.ErrorIs(t, err, binimg.ErrBadBorder, "rank mismatch")
	_, err = binimg.Extend(in, []int{-1, 0}, false)
	assert.ErrorIs(t, err, binimg.ErrBadBorder)
	_, err = binimg.Extend(nil, []int{0, 0}, false)
	assert.ErrorIs(t, err, binimg.ErrNotForged)
}
