package binimg

// Image is an N-dimensional binary image: one status byte per pixel, bit 0
// holding the logical sample. Engines temporarily stash flag bits (border,
// mask, seed, enqueued) in the upper bits of the same byte; every exported
// operation strips them before returning, so outside an engine call each
// byte is strictly 0 or 1.
//
// Construction normalizes the layout: strides[0] = 1 and
// strides[d] = strides[d-1]*sizes[d-1], which makes a pixel's linear buffer
// index equal to the dot product of its coordinates with the strides.
type Image struct {
	sizes   []int
	strides []int
	pixels  []uint8
}

// New returns a forged zero image with the given extents.
// Returns ErrBadDimensions when no extents are given or any extent is < 1.
//
// Complexity: O(number of pixels) for the zeroed buffer.
func New(sizes ...int) (*Image, error) {
	if len(sizes) == 0 {
		return nil, ErrBadDimensions
	}
	n := 1
	for _, s := range sizes {
		if s < 1 {
			return nil, ErrBadDimensions
		}
		n *= s
	}
	im := &Image{
		sizes:   make([]int, len(sizes)),
		strides: make([]int, len(sizes)),
		pixels:  make([]uint8, n),
	}
	copy(im.sizes, sizes)
	stride := 1
	for d, s := range sizes {
		im.strides[d] = stride
		stride *= s
	}
	return im, nil
}

// IsForged reports whether the image has an allocated pixel buffer.
func (im *Image) IsForged() bool {
	return im != nil && im.pixels != nil
}

// Dimensionality returns the number of dimensions (0 for an unforged image).
func (im *Image) Dimensionality() int {
	if !im.IsForged() {
		return 0
	}
	return len(im.sizes)
}

// Sizes returns a copy of the extent vector.
func (im *Image) Sizes() []int {
	if !im.IsForged() {
		return nil
	}
	out := make([]int, len(im.sizes))
	copy(out, im.sizes)
	return out
}

// Size returns the extent along dimension d.
func (im *Image) Size(d int) int {
	return im.sizes[d]
}

// Strides returns a copy of the stride vector.
func (im *Image) Strides() []int {
	if !im.IsForged() {
		return nil
	}
	out := make([]int, len(im.strides))
	copy(out, im.strides)
	return out
}

// NumPixels returns the total pixel count.
func (im *Image) NumPixels() int {
	if !im.IsForged() {
		return 0
	}
	return len(im.pixels)
}

// Pixels exposes the raw status-byte buffer. This is the engine fast path:
// hot loops index it directly instead of going through At/Set. The slice
// aliases the image; mutating it mutates the image.
func (im *Image) Pixels() []uint8 {
	if !im.IsForged() {
		return nil
	}
	return im.pixels
}

// Offset returns the linear buffer index of the pixel at coords.
// Returns ErrBadDimensions on rank mismatch, ErrOutOfRange outside the domain.
func (im *Image) Offset(coords ...int) (int, error) {
	if !im.IsForged() {
		return 0, ErrNotForged
	}
	if len(coords) != len(im.sizes) {
		return 0, ErrBadDimensions
	}
	off := 0
	for d, c := range coords {
		if c < 0 || c >= im.sizes[d] {
			return 0, ErrOutOfRange
		}
		off += c * im.strides[d]
	}
	return off, nil
}

// CoordsInto decomposes a linear buffer index into coordinates, writing them
// to dst (which must have length Dimensionality). Valid for the normalized
// strides produced by New. The inverse of Offset.
func (im *Image) CoordsInto(offset int, dst []int) {
	for d, s := range im.sizes {
		dst[d] = offset % s
		offset /= s
	}
}

// At returns the logical sample at coords.
func (im *Image) At(coords ...int) (bool, error) {
	off, err := im.Offset(coords...)
	if err != nil {
		return false, err
	}
	return im.pixels[off]&DataBit != 0, nil
}

// Set writes the logical sample at coords, leaving scratch bits untouched.
func (im *Image) Set(value bool, coords ...int) error {
	off, err := im.Offset(coords...)
	if err != nil {
		return err
	}
	if value {
		im.pixels[off] |= DataBit
	} else {
		im.pixels[off] &^= DataBit
	}
	return nil
}

// Fill sets every pixel to value, clearing all scratch bits.
func (im *Image) Fill(value bool) {
	var b uint8
	if value {
		b = DataBit
	}
	for i := range im.pixels {
		im.pixels[i] = b
	}
}

// Clone returns a deep copy (same shape, copied buffer).
func (im *Image) Clone() *Image {
	if !im.IsForged() {
		return nil
	}
	out := &Image{
		sizes:   make([]int, len(im.sizes)),
		strides: make([]int, len(im.strides)),
		pixels:  make([]uint8, len(im.pixels)),
	}
	copy(out.sizes, im.sizes)
	copy(out.strides, im.strides)
	copy(out.pixels, im.pixels)
	return out
}

// Equal reports whether both images are forged, share one shape, and agree
// on every logical sample. Scratch bits are ignored.
func (im *Image) Equal(other *Image) bool {
	if !im.IsForged() || !other.IsForged() {
		return false
	}
	if len(im.sizes) != len(other.sizes) {
		return false
	}
	for d, s := range im.sizes {
		if other.sizes[d] != s {
			return false
		}
	}
	for i, b := range im.pixels {
		if b&DataBit != other.pixels[i]&DataBit {
			return false
		}
	}
	return true
}

// Count returns the number of foreground pixels.
//
// Complexity: O(number of pixels).
func (im *Image) Count() int {
	if !im.IsForged() {
		return 0
	}
	n := 0
	for _, b := range im.pixels {
		n += int(b & DataBit)
	}
	return n
}

// SameSizes reports whether two forged images have identical size vectors.
func SameSizes(a, b *Image) bool {
	if !a.IsForged() || !b.IsForged() || len(a.sizes) != len(b.sizes) {
		return false
	}
	for d, s := range a.sizes {
		if b.sizes[d] != s {
			return false
		}
	}
	return true
}
