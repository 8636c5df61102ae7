package binimg

// Not returns the logical complement of a as a fresh image.
func Not(a *Image) (*Image, error) {
	if !a.IsForged() {
		return nil, ErrNotForged
	}
	out := a.Clone()
	for i, b := range a.pixels {
		out.pixels[i] = (b & DataBit) ^ DataBit
	}
	return out, nil
}

// And returns the pixelwise conjunction of a and b as a fresh image.
// Returns ErrSizeMismatch when the shapes differ.
func And(a, b *Image) (*Image, error) {
	return combine(a, b, func(x, y uint8) uint8 { return x & y })
}

// Or returns the pixelwise disjunction of a and b as a fresh image.
func Or(a, b *Image) (*Image, error) {
	return combine(a, b, func(x, y uint8) uint8 { return x | y })
}

// Xor returns the pixelwise exclusive-or of a and b as a fresh image.
func Xor(a, b *Image) (*Image, error) {
	return combine(a, b, func(x, y uint8) uint8 { return x ^ y })
}

func combine(a, b *Image, op func(x, y uint8) uint8) (*Image, error) {
	if !a.IsForged() || !b.IsForged() {
		return nil, ErrNotForged
	}
	if !SameSizes(a, b) {
		return nil, ErrSizeMismatch
	}
	out := a.Clone()
	for i := range a.pixels {
		out.pixels[i] = op(a.pixels[i]&DataBit, b.pixels[i]&DataBit)
	}
	return out, nil
}
