package binimg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binmorph/binimg"
)

const borderBit uint8 = 1 << 2

// countWithBits returns how many pixels carry every bit of mask.
func countWithBits(img *binimg.Image, mask uint8) int {
	n := 0
	for _, b := range img.Pixels() {
		if binimg.TestBits(b, mask) {
			n++
		}
	}
	return n
}

func TestMarkBorder_2D(t *testing.T) {
	img, err := binimg.New(4, 3)
	require.NoError(t, err)
	img.MarkBorder(borderBit)

	// 4x3 image: only (1,1) and (2,1) are interior.
	assert.Equal(t, 10, countWithBits(img, borderBit))
	coords := make([]int, 2)
	for off, b := range img.Pixels() {
		img.CoordsInto(off, coords)
		interior := coords[0] > 0 && coords[0] < 3 && coords[1] == 1
		assert.Equal(t, !interior, binimg.TestAnyBit(b, borderBit), "offset %d", off)
	}
}

func TestMarkBorder_ClearsInterior(t *testing.T) {
	img, err := binimg.New(5, 5)
	require.NoError(t, err)
	px := img.Pixels()
	for i := range px {
		px[i] |= borderBit // pre-pollute everywhere
	}
	img.MarkBorder(borderBit)
	assert.Equal(t, 16, countWithBits(img, borderBit))
}

func TestMarkBorder_EverythingIsShell(t *testing.T) {
	cases := []struct {
		name  string
		sizes []int
	}{
		{"1-D", []int{7}},
		{"singleton dimension", []int{4, 1}},
		{"two-wide", []int{2, 2}},
		{"single pixel", []int{1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img, err := binimg.New(tc.sizes...)
			require.NoError(t, err)
			img.MarkBorder(borderBit)
			want := img.NumPixels()
			if tc.name == "1-D" {
				want = 2 // only the two endpoints of the line
			}
			assert.Equal(t, want, countWithBits(img, borderBit))
		})
	}
}

func TestMarkBorder_3D(t *testing.T) {
	img, err := binimg.New(3, 3, 3)
	require.NoError(t, err)
	img.MarkBorder(borderBit)
	assert.Equal(t, 26, countWithBits(img, borderBit))
}

func TestClearBorder_LeavesInterior(t *testing.T) {
	img, err := binimg.New(5, 4)
	require.NoError(t, err)
	px := img.Pixels()
	for i := range px {
		px[i] |= borderBit
	}
	img.ClearBorder(borderBit)

	// The shell is clean, the 3x2 interior still carries the bit.
	assert.Equal(t, 6, countWithBits(img, borderBit))
	coords := make([]int, 2)
	for off, b := range img.Pixels() {
		img.CoordsInto(off, coords)
		interior := coords[0] > 0 && coords[0] < 4 && coords[1] > 0 && coords[1] < 3
		assert.Equal(t, interior, binimg.TestAnyBit(b, borderBit), "offset %d", off)
	}
}
