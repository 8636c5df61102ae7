package binimg

// MarkBorder sets the given scratch bits on every pixel of the outer
// one-pixel shell and clears them on every interior pixel. Engines use the
// border bit to pay bounds-check costs only where a neighbor can actually
// fall outside the image.
//
// Complexity: O(number of pixels).
func (im *Image) MarkBorder(mask uint8) {
	im.processBorders(
		func(off int) { im.pixels[off] |= mask },
		func(off int) { im.pixels[off] &^= mask },
	)
}

// ClearBorder clears the given scratch bits within the outer shell only,
// leaving interior pixels untouched.
//
// Complexity: O(border pixels).
func (im *Image) ClearBorder(mask uint8) {
	im.processBorders(func(off int) { im.pixels[off] &^= mask }, nil)
}

// SetBorder sets the given bits within the outer shell only, leaving
// interior pixels untouched.
//
// Complexity: O(border pixels).
func (im *Image) SetBorder(mask uint8) {
	im.processBorders(func(off int) { im.pixels[off] |= mask }, nil)
}

// processBorders applies borderFn to every shell pixel and interiorFn (when
// non-nil) to every other pixel. Lines run along dimension 0: a line whose
// remaining coordinates touch the shell is processed wholesale, any other
// line only at its two ends.
func (im *Image) processBorders(borderFn, interiorFn func(off int)) {
	if !im.IsForged() {
		return
	}
	nd := len(im.sizes)
	lineLen := im.sizes[0]
	coords := make([]int, nd) // coords[0] stays 0; the odometer walks the rest
	for {
		start := 0
		onShell := false
		for d := 1; d < nd; d++ {
			start += coords[d] * im.strides[d]
			if coords[d] == 0 || coords[d] == im.sizes[d]-1 {
				onShell = true
			}
		}
		if onShell {
			for i := 0; i < lineLen; i++ {
				borderFn(start + i)
			}
		} else {
			borderFn(start)
			if lineLen > 1 {
				borderFn(start + lineLen - 1)
			}
			if interiorFn != nil {
				for i := 1; i < lineLen-1; i++ {
					interiorFn(start + i)
				}
			}
		}
		d := 1
		for ; d < nd; d++ {
			coords[d]++
			if coords[d] < im.sizes[d] {
				break
			}
			coords[d] = 0
		}
		if d == nd {
			return
		}
	}
}
