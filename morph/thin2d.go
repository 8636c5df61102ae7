package morph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/binmorph/binimg"
)

// Scratch planes of the 2-D thinning/thickening worker. The mask bit sits
// in a different position than the N-dimensional operations use because the
// worker compares whole status bytes against an expected value instead of
// testing planes individually.
const (
	thinMaskBit   = uint8(2)
	thinQueuedBit = uint8(4)
)

// ConditionalThinning2D thins the objects of a 2-D binary image down to
// single-pixel-wide skeletons while preserving their topology. Only pixels
// inside mask may be removed; a nil or unforged mask allows the whole
// image. Each iteration peels at most one pixel of thickness; zero
// iterations (the default) thins until stability.
//
// The end pixel condition decides the fate of line extremities: EndPixelLose
// (the default) shrinks open-ended lines, EndPixelKeep preserves their tips.
// The outer one-pixel shell of the image is never processed and takes the
// edge condition's value in the output.
func ConditionalThinning2D(in, mask *binimg.Image, opts ...Option) (*binimg.Image, error) {
	o := buildOptions(thinning2DDefaults(), opts)
	out, err := thickenThin2D(in, mask, o, false)
	if err != nil {
		return nil, fmt.Errorf("ConditionalThinning2D: %w", err)
	}
	return out, nil
}

// ConditionalThickening2D is the dual of ConditionalThinning2D: it grows the
// objects of a 2-D binary image into the mask without ever merging distinct
// objects or closing background channels. Thickening until stability
// produces the objects' influence zones within the mask, separated by the
// skeleton of the background.
//
// Parameters and defaults match ConditionalThinning2D.
func ConditionalThickening2D(in, mask *binimg.Image, opts ...Option) (*binimg.Image, error) {
	o := buildOptions(thinning2DDefaults(), opts)
	out, err := thickenThin2D(in, mask, o, true)
	if err != nil {
		return nil, fmt.Errorf("ConditionalThickening2D: %w", err)
	}
	return out, nil
}

// thickenThin2D is the shared worker. Thinning pops object pixels and
// clears them when Hilditch's conditions allow; thickening pops background
// pixels and sets them under the complementary conditions, which the same
// lookup tables answer after inverting the neighborhood.
func thickenThin2D(in, mask *binimg.Image, o Options, thicken bool) (*binimg.Image, error) {
	if !in.IsForged() {
		return nil, binimg.ErrNotForged
	}
	if in.Dimensionality() != 2 {
		return nil, ErrNot2D
	}
	hasMask := mask.IsForged()
	if hasMask && !binimg.SameSizes(mask, in) {
		return nil, binimg.ErrSizeMismatch
	}
	if o.Iterations < 0 {
		return nil, ErrBadIterations
	}
	iterations := o.Iterations
	if iterations == 0 {
		iterations = math.MaxInt
	}
	var lut *[256]uint8
	switch o.EndPixel {
	case EndPixelLose:
		lut = &hilditchLUT[0]
	case EndPixelKeep:
		lut = &hilditchLUT[1]
	default:
		return nil, ErrBadEndPixel
	}
	edgeIsObject, err := o.Edge.outsideIsObject()
	if err != nil {
		return nil, err
	}

	out := in.Clone()
	px := out.Pixels()

	if hasMask {
		for i, b := range mask.Pixels() {
			if b&dataBit != 0 {
				px[i] |= thinMaskBit
			}
		}
	} else {
		for i := range px {
			px[i] |= thinMaskBit
		}
	}

	// The outer shell takes the edge condition's data value and loses its
	// mask bit. Shell pixels are therefore never enqueued, which lets the
	// inner loops touch all eight neighbors without bounds checks, while
	// interior pixels still see the shell's value in their neighborhood.
	if edgeIsObject {
		out.SetBorder(dataBit)
	} else {
		out.ClearBorder(dataBit)
	}
	out.ClearBorder(thinMaskBit)

	// A pixel is a flip candidate while its byte matches this exactly:
	// right polarity, inside the mask, not already queued.
	expected := thinMaskBit
	if !thicken {
		expected |= dataBit
	}

	strides := out.Strides()
	sx, sy := strides[0], strides[1]
	findObject := !thicken

	// Seed with candidates that touch the opposite value edge-on.
	q := newPixelQueue(64)
	for off, b := range px {
		if b != expected {
			continue
		}
		if (px[off-sy]&dataBit != 0) != findObject ||
			(px[off-sx]&dataBit != 0) != findObject ||
			(px[off+sx]&dataBit != 0) != findObject ||
			(px[off+sy]&dataBit != 0) != findObject {
			q.push(off)
			px[off] |= thinQueuedBit
		}
	}

	edgeNeighbors := [4]int{-sy, -sx, sx, sy}
	vertexNeighbors := [4]int{-sy - sx, -sy + sx, sy - sx, sy + sx}

	for iter := 0; iter < iterations && !q.empty(); iter++ {
		for count := q.size(); count > 0; count-- {
			off := q.pop()
			px[off] &^= thinQueuedBit
			// A pixel that fails here is not lost: it is re-enqueued when
			// one of its neighbors flips later.
			if lut[neighborCode(px, off, sx, sy, findObject)] != 0 {
				continue
			}
			if thicken {
				px[off] |= dataBit
			} else {
				px[off] &^= dataBit
			}
			none := true
			for _, noff := range edgeNeighbors {
				nb := off + noff
				if px[nb] == expected {
					q.push(nb)
					px[nb] |= thinQueuedBit
					none = false
				}
			}
			// Vertex-connected neighbors only matter when no edge-connected
			// one qualified.
			if none {
				for _, noff := range vertexNeighbors {
					nb := off + noff
					if px[nb] == expected {
						q.push(nb)
						px[nb] |= thinQueuedBit
					}
				}
			}
		}
	}

	for i, b := range px {
		if b&dataBit != 0 {
			px[i] = dataBit
		} else {
			px[i] = 0
		}
	}
	return out, nil
}
