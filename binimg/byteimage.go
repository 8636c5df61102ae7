package binimg

// ByteImage shares Image's geometry but interprets each byte as a small
// unsigned count (0..255). Produced by the neighbor-counting filter.
type ByteImage struct {
	sizes   []int
	strides []int
	values  []uint8
}

// NewByte returns a zeroed count image with the given extents.
func NewByte(sizes ...int) (*ByteImage, error) {
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
	bi := &ByteImage{
		sizes:   make([]int, len(sizes)),
		strides: make([]int, len(sizes)),
		values:  make([]uint8, n),
	}
	copy(bi.sizes, sizes)
	stride := 1
	for d, s := range sizes {
		bi.strides[d] = stride
		stride *= s
	}
	return bi, nil
}

// IsForged reports whether the image has an allocated buffer.
func (bi *ByteImage) IsForged() bool {
	return bi != nil && bi.values != nil
}

// Dimensionality returns the number of dimensions.
func (bi *ByteImage) Dimensionality() int {
	if !bi.IsForged() {
		return 0
	}
	return len(bi.sizes)
}

// Sizes returns a copy of the extent vector.
func (bi *ByteImage) Sizes() []int {
	if !bi.IsForged() {
		return nil
	}
	out := make([]int, len(bi.sizes))
	copy(out, bi.sizes)
	return out
}

// NumPixels returns the total pixel count.
func (bi *ByteImage) NumPixels() int {
	if !bi.IsForged() {
		return 0
	}
	return len(bi.values)
}

// Values exposes the raw count buffer (aliases the image).
func (bi *ByteImage) Values() []uint8 {
	if !bi.IsForged() {
		return nil
	}
	return bi.values
}

// At returns the count at coords.
func (bi *ByteImage) At(coords ...int) (uint8, error) {
	off, err := bi.offset(coords)
	if err != nil {
		return 0, err
	}
	return bi.values[off], nil
}

// Set writes the count at coords.
func (bi *ByteImage) Set(value uint8, coords ...int) error {
	off, err := bi.offset(coords)
	if err != nil {
		return err
	}
	bi.values[off] = value
	return nil
}

func (bi *ByteImage) offset(coords []int) (int, error) {
	if !bi.IsForged() {
		return 0, ErrNotForged
	}
	if len(coords) != len(bi.sizes) {
		return 0, ErrBadDimensions
	}
	off := 0
	for d, c := range coords {
		if c < 0 || c >= bi.sizes[d] {
			return 0, ErrOutOfRange
		}
		off += c * bi.strides[d]
	}
	return off, nil
}
