package binimg

// DataBit is the status-byte bit holding the logical sample. The remaining
// bits are scratch space; each engine assigns them per call and strips them
// before returning.
const DataBit uint8 = 1

// SetBits sets all bits of mask in *b.
func SetBits(b *uint8, mask uint8) {
	*b |= mask
}

// ResetBits clears all bits of mask in *b.
func ResetBits(b *uint8, mask uint8) {
	*b &^= mask
}

// TestBits reports whether every bit of mask is set in b.
func TestBits(b, mask uint8) bool {
	return b&mask == mask
}

// TestAnyBit reports whether at least one bit of mask is set in b.
func TestAnyBit(b, mask uint8) bool {
	return b&mask != 0
}

// ClearBits clears the given bits on every pixel of the image. Engines call
// this to strip scratch planes before handing an image back to the caller.
//
// Complexity: O(number of pixels).
func (im *Image) ClearBits(mask uint8) {
	if !im.IsForged() {
		return
	}
	keep := ^mask
	for i := range im.pixels {
		im.pixels[i] &= keep
	}
}
