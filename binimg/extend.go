package binimg

// Extend pads in by border[d] pixels on each side of dimension d, fills the
// margin with value, and copies the input into the center. This is the
// boundary-extension surface the hit-or-miss operators rely on before their
// correlation passes (value=false implements the treat-outside-as-background
// policy).
//
// Complexity: O(number of output pixels).
func Extend(in *Image, border []int, value bool) (*Image, error) {
	if !in.IsForged() {
		return nil, ErrNotForged
	}
	nd := len(in.sizes)
	if len(border) != nd {
		return nil, ErrBadBorder
	}
	outSizes := make([]int, nd)
	for d, b := range border {
		if b < 0 {
			return nil, ErrBadBorder
		}
		outSizes[d] = in.sizes[d] + 2*b
	}
	out, err := New(outSizes...)
	if err != nil {
		return nil, err
	}
	out.Fill(value)

	lineLen := in.sizes[0]
	coords := make([]int, nd)
	for {
		inStart := 0
		outStart := border[0]
		for d := 1; d < nd; d++ {
			inStart += coords[d] * in.strides[d]
			outStart += (coords[d] + border[d]) * out.strides[d]
		}
		for i := 0; i < lineLen; i++ {
			out.pixels[outStart+i] = in.pixels[inStart+i] & DataBit
		}
		d := 1
		for ; d < nd; d++ {
			coords[d]++
			if coords[d] < in.sizes[d] {
				break
			}
			coords[d] = 0
		}
		if d == nd {
			return out, nil
		}
	}
}
