package morph

// hilditchLUT encodes Hilditch's conditions for the 2-D thinning and
// thickening operations. The index is an 8-bit neighborhood code with east
// at bit 0, continuing counterclockwise: E, NE, N, NW, W, SW, S, SE. For
// thinning a bit is set when the neighbor is object; for thickening the
// neighbor values are complemented first, which makes the same tables
// answer both questions. An entry of 0 means the center pixel may flip
// without changing the topology of the image.
//
// hilditchLUT[0] lets end pixels erode away; hilditchLUT[1] protects pixels
// with exactly one neighbor, preserving line ends.
var hilditchLUT = [2][256]uint8{
	{
		1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0,
		0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0,
		0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0, 1,
		0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0, 1,
		0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0,
		0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0, 1,
		0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0, 1,
	}, {
		1, 1, 1, 0, 1, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0,
		1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0, 1,
		0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0, 1,
		1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0,
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0,
		0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0, 1,
		0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 0, 1, 0, 1,
	},
}

// neighborCode packs the values of the eight neighbors of an interior pixel
// into a hilditchLUT index. object selects the polarity: with object true a
// bit is set for object neighbors, with object false for background ones.
func neighborCode(px []uint8, off, sx, sy int, object bool) uint8 {
	var code uint8
	if (px[off+sx]&dataBit != 0) == object {
		code |= 1 // E
	}
	if (px[off+sx-sy]&dataBit != 0) == object {
		code |= 2 // NE
	}
	if (px[off-sy]&dataBit != 0) == object {
		code |= 4 // N
	}
	if (px[off-sx-sy]&dataBit != 0) == object {
		code |= 8 // NW
	}
	if (px[off-sx]&dataBit != 0) == object {
		code |= 16 // W
	}
	if (px[off-sx+sy]&dataBit != 0) == object {
		code |= 32 // SW
	}
	if (px[off+sy]&dataBit != 0) == object {
		code |= 64 // S
	}
	if (px[off+sx+sy]&dataBit != 0) == object {
		code |= 128 // SE
	}
	return code
}
