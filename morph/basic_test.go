package morph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/morph"
	"github.com/katalvlaran/binmorph/neighbors"
)

// mustImage builds a width-by-height image from rows of 0/1 values,
// rows[y][x].
func mustImage(t *testing.T, rows [][]int) *binimg.Image {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	img, err := binimg.New(w, h)
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, w)
		for x, v := range row {
			if v != 0 {
				require.NoError(t, img.Set(true, x, y))
			}
		}
	}
	return img
}

// fillRect sets the inclusive rectangle [x0,x1]x[y0,y1] to object.
func fillRect(t *testing.T, img *binimg.Image, x0, y0, x1, y1 int) {
	t.Helper()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			require.NoError(t, img.Set(true, x, y))
		}
	}
}

// scatter fills roughly a quarter of the image with a fixed pseudo-random
// object pattern.
func scatter(img *binimg.Image, seed int64) {
	r := rand.New(rand.NewSource(seed))
	px := img.Pixels()
	for i := range px {
		if r.Intn(4) == 0 {
			px[i] = binimg.DataBit
		}
	}
}

// subsetOf reports whether every object pixel of sub is object in super.
func subsetOf(sub, super *binimg.Image) bool {
	a, b := sub.Pixels(), super.Pixels()
	for i := range a {
		if a[i]&binimg.DataBit != 0 && b[i]&binimg.DataBit == 0 {
			return false
		}
	}
	return true
}

func TestDilation_SinglePixelGrowth(t *testing.T) {
	tests := []struct {
		name         string
		connectivity int
		want         int
	}{
		{"chessboard", 2, 15 * 15},
		{"city block", 1, 7*8*2 + 1},
		{"alternating low", neighbors.AlternateLow, 185},
		{"alternating high", neighbors.AlternateHigh, 201},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := binimg.New(64, 41)
			require.NoError(t, err)
			require.NoError(t, img.Set(true, 32, 20))

			grown, err := morph.Dilation(img,
				morph.WithConnectivity(tc.connectivity), morph.WithIterations(7))
			require.NoError(t, err)
			assert.Equal(t, tc.want, grown.Count())

			// The erosion dual with the same parameters recovers the
			// original single pixel.
			back, err := morph.Erosion(grown,
				morph.WithConnectivity(tc.connectivity), morph.WithIterations(7))
			require.NoError(t, err)
			assert.Equal(t, 1, back.Count())
			on, err := back.At(32, 20)
			require.NoError(t, err)
			assert.True(t, on)
		})
	}
}

func TestDilation_1D(t *testing.T) {
	img, err := binimg.New(21)
	require.NoError(t, err)
	require.NoError(t, img.Set(true, 10))

	out, err := morph.Dilation(img, morph.WithConnectivity(1), morph.WithIterations(3))
	require.NoError(t, err)
	assert.Equal(t, 7, out.Count())
	for x := 7; x <= 13; x++ {
		on, err := out.At(x)
		require.NoError(t, err)
		assert.True(t, on, "pixel %d", x)
	}

	// Alternating connectivities are only defined in 2-D and 3-D, so the
	// default options cannot be used on a 1-D image.
	_, err = morph.Dilation(img)
	assert.ErrorIs(t, err, neighbors.ErrBadConnectivity)
}

func TestDilation_ZeroIterationsCopies(t *testing.T) {
	img, err := binimg.New(9, 7)
	require.NoError(t, err)
	fillRect(t, img, 2, 2, 4, 3)

	out, err := morph.Dilation(img, morph.WithIterations(0))
	require.NoError(t, err)
	assert.True(t, out.Equal(img))
	assert.NotSame(t, img, out)
}

func TestDilation_EdgeObjectGrowsInward(t *testing.T) {
	// With the outside considered object, an empty image grows a ring from
	// the border on the first step.
	img, err := binimg.New(5, 5)
	require.NoError(t, err)

	out, err := morph.Dilation(img,
		morph.WithConnectivity(2), morph.WithIterations(1), morph.WithEdge(morph.EdgeObject))
	require.NoError(t, err)
	assert.Equal(t, 16, out.Count())
	center, err := out.At(2, 2)
	require.NoError(t, err)
	assert.False(t, center)

	// With the default background condition nothing can grow.
	out, err = morph.Dilation(img, morph.WithConnectivity(2), morph.WithIterations(1))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count())
}

func TestErosion_EdgeConditions(t *testing.T) {
	full, err := binimg.New(5, 5)
	require.NoError(t, err)
	full.Fill(true)

	// Background outside: the shell erodes away, one ring per iteration.
	out, err := morph.Erosion(full,
		morph.WithConnectivity(1), morph.WithIterations(1), morph.WithEdge(morph.EdgeBackground))
	require.NoError(t, err)
	assert.Equal(t, 9, out.Count())

	out, err = morph.Erosion(full,
		morph.WithConnectivity(1), morph.WithIterations(2), morph.WithEdge(morph.EdgeBackground))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count())
	center, err := out.At(2, 2)
	require.NoError(t, err)
	assert.True(t, center)

	// Object outside: a full image has no edge anywhere and stays full.
	out, err = morph.Erosion(full,
		morph.WithConnectivity(1), morph.WithIterations(3), morph.WithEdge(morph.EdgeObject))
	require.NoError(t, err)
	assert.Equal(t, 25, out.Count())
}

func TestDilationErosion_Duality(t *testing.T) {
	img, err := binimg.New(16, 11)
	require.NoError(t, err)
	scatter(img, 42)

	for _, conn := range []int{1, 2, neighbors.AlternateLow, neighbors.AlternateHigh} {
		dilated, err := morph.Dilation(img,
			morph.WithConnectivity(conn), morph.WithIterations(2), morph.WithEdge(morph.EdgeBackground))
		require.NoError(t, err)
		assert.True(t, subsetOf(img, dilated), "connectivity %d: dilation must not lose pixels", conn)

		// Eroding the complement with the complementary edge condition is
		// the same as dilating the image.
		complement, err := binimg.Not(img)
		require.NoError(t, err)
		eroded, err := morph.Erosion(complement,
			morph.WithConnectivity(conn), morph.WithIterations(2), morph.WithEdge(morph.EdgeObject))
		require.NoError(t, err)
		dual, err := binimg.Not(eroded)
		require.NoError(t, err)
		assert.True(t, dilated.Equal(dual), "connectivity %d", conn)
	}
}

func TestOpening_RemovesSmallObjects(t *testing.T) {
	img, err := binimg.New(11, 11)
	require.NoError(t, err)
	fillRect(t, img, 3, 3, 7, 7)
	require.NoError(t, img.Set(true, 9, 1))

	out, err := morph.Opening(img, morph.WithConnectivity(2), morph.WithIterations(1))
	require.NoError(t, err)

	want, err := binimg.New(11, 11)
	require.NoError(t, err)
	fillRect(t, want, 3, 3, 7, 7)
	assert.True(t, out.Equal(want), "the block survives, the speck does not")
}

func TestOpening_SpecialEdgePreservesBorderObjects(t *testing.T) {
	strip := func() *binimg.Image {
		img, err := binimg.New(7, 7)
		require.NoError(t, err)
		fillRect(t, img, 0, 0, 1, 6)
		return img
	}

	// The default special handling erodes with EdgeObject, so the strip
	// hanging off the image border is not eaten from the outside.
	out, err := morph.Opening(strip(), morph.WithConnectivity(2), morph.WithIterations(1))
	require.NoError(t, err)
	assert.True(t, out.Equal(strip()))

	// A plain background condition destroys it.
	out, err = morph.Opening(strip(),
		morph.WithConnectivity(2), morph.WithIterations(1), morph.WithEdge(morph.EdgeBackground))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count())
}

func TestClosing_FillsHoles(t *testing.T) {
	img, err := binimg.New(9, 9)
	require.NoError(t, err)
	fillRect(t, img, 2, 2, 6, 6)
	require.NoError(t, img.Set(false, 4, 4))

	out, err := morph.Closing(img, morph.WithConnectivity(2), morph.WithIterations(1))
	require.NoError(t, err)

	want, err := binimg.New(9, 9)
	require.NoError(t, err)
	fillRect(t, want, 2, 2, 6, 6)
	assert.True(t, out.Equal(want))
}

func TestBasic_InvalidArguments(t *testing.T) {
	img, err := binimg.New(5, 5)
	require.NoError(t, err)

	_, err = morph.Dilation(nil)
	assert.ErrorIs(t, err, binimg.ErrNotForged)

	_, err = morph.Dilation(&binimg.Image{})
	assert.ErrorIs(t, err, binimg.ErrNotForged)

	_, err = morph.Dilation(img, morph.WithIterations(-1))
	assert.ErrorIs(t, err, morph.ErrBadIterations)

	_, err = morph.Dilation(img, morph.WithConnectivity(3))
	assert.ErrorIs(t, err, neighbors.ErrBadConnectivity)

	_, err = morph.Erosion(img, morph.WithConnectivity(-3))
	assert.ErrorIs(t, err, neighbors.ErrBadConnectivity)

	_, err = morph.Dilation(img, morph.WithEdge(morph.EdgeCondition("purple")))
	assert.ErrorIs(t, err, morph.ErrBadEdgeCondition)

	// EdgeSpecial belongs to Opening and Closing only.
	_, err = morph.Dilation(img, morph.WithEdge(morph.EdgeSpecial))
	assert.ErrorIs(t, err, morph.ErrBadEdgeCondition)

	_, err = morph.Opening(img, morph.WithEdge(morph.EdgeCondition("purple")))
	assert.ErrorIs(t, err, morph.ErrBadEdgeCondition)

	_, err = morph.Closing(img, morph.WithEdge(morph.EdgeCondition("purple")))
	assert.ErrorIs(t, err, morph.ErrBadEdgeCondition)
}
