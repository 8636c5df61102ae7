package morph

import (
	"fmt"

	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/neighbors"
)

// Dilation grows the objects in a binary image by the given number of
// propagation steps.
//
// Defaults: connectivity neighbors.AlternateLow (alternating 1, 2, 1, ... in
// 2-D), 3 iterations, EdgeBackground. The alternating connectivities
// approximate isotropic growth; a fixed connectivity grows a diamond (1) or
// a square (2) in 2-D. Zero iterations returns a plain copy of the input.
func Dilation(in *binimg.Image, opts ...Option) (*binimg.Image, error) {
	o := buildOptions(dilationDefaults(), opts)
	out, err := dilateErode(in, o, false)
	if err != nil {
		return nil, fmt.Errorf("Dilation: %w", err)
	}
	return out, nil
}

// Erosion shrinks the objects in a binary image by the given number of
// propagation steps.
//
// Defaults: connectivity neighbors.AlternateLow, 3 iterations, EdgeObject.
// The edge condition default differs from Dilation so that objects touching
// the image border erode only from their inner side.
func Erosion(in *binimg.Image, opts ...Option) (*binimg.Image, error) {
	o := buildOptions(erosionDefaults(), opts)
	out, err := dilateErode(in, o, true)
	if err != nil {
		return nil, fmt.Errorf("Erosion: %w", err)
	}
	return out, nil
}

// Opening erodes and then dilates, removing objects smaller than the
// effective structuring element while preserving the rest.
//
// Defaults: connectivity neighbors.AlternateLow, 3 iterations, EdgeSpecial.
// EdgeSpecial erodes with EdgeObject and dilates with EdgeBackground, which
// keeps objects that touch the image border from being eaten away from the
// outside. EdgeBackground or EdgeObject apply the same condition to both
// passes.
func Opening(in *binimg.Image, opts ...Option) (*binimg.Image, error) {
	o := buildOptions(openingDefaults(), opts)
	erodeEdge, dilateEdge := o.Edge, o.Edge
	if o.Edge == EdgeSpecial {
		erodeEdge, dilateEdge = EdgeObject, EdgeBackground
	}
	o.Edge = erodeEdge
	tmp, err := dilateErode(in, o, true)
	if err != nil {
		return nil, fmt.Errorf("Opening: %w", err)
	}
	o.Edge = dilateEdge
	out, err := dilateErode(tmp, o, false)
	if err != nil {
		return nil, fmt.Errorf("Opening: %w", err)
	}
	return out, nil
}

// Closing dilates and then erodes, filling holes and gaps smaller than the
// effective structuring element.
//
// Defaults: connectivity neighbors.AlternateLow, 3 iterations, EdgeSpecial.
// EdgeSpecial dilates with EdgeBackground and erodes with EdgeObject; see
// Opening for the rationale.
func Closing(in *binimg.Image, opts ...Option) (*binimg.Image, error) {
	o := buildOptions(closingDefaults(), opts)
	dilateEdge, erodeEdge := o.Edge, o.Edge
	if o.Edge == EdgeSpecial {
		dilateEdge, erodeEdge = EdgeBackground, EdgeObject
	}
	o.Edge = dilateEdge
	tmp, err := dilateErode(in, o, false)
	if err != nil {
		return nil, fmt.Errorf("Closing: %w", err)
	}
	o.Edge = erodeEdge
	out, err := dilateErode(tmp, o, true)
	if err != nil {
		return nil, fmt.Errorf("Closing: %w", err)
	}
	return out, nil
}

// dilateErode is the shared worker behind Dilation and Erosion. The two
// operations are duals: dilation seeds the queue with background edge pixels
// and sets the data bit when propagating, erosion seeds with object edge
// pixels and clears it. findObject selects the polarity; everything else is
// identical.
func dilateErode(in *binimg.Image, o Options, findObject bool) (*binimg.Image, error) {
	if !in.IsForged() {
		return nil, binimg.ErrNotForged
	}
	if o.Iterations < 0 {
		return nil, ErrBadIterations
	}
	outsideIsObject, err := o.Edge.outsideIsObject()
	if err != nil {
		return nil, err
	}

	nd := in.Dimensionality()

	// Negative connectivity alternates between two neighborhoods: one for
	// even iterations (including the seeding pass) and one for odd ones.
	conn0, err := neighbors.Resolve(nd, o.Connectivity, 0)
	if err != nil {
		return nil, err
	}
	conn1, err := neighbors.Resolve(nd, o.Connectivity, 1)
	if err != nil {
		return nil, err
	}
	list0, err := neighbors.New(nd, conn0)
	if err != nil {
		return nil, err
	}
	list1, err := neighbors.New(nd, conn1)
	if err != nil {
		return nil, err
	}

	out := in.Clone()
	strides := out.Strides()
	offsets0, err := list0.Offsets(strides)
	if err != nil {
		return nil, err
	}
	offsets1, err := list1.Offsets(strides)
	if err != nil {
		return nil, err
	}

	out.MarkBorder(borderBit)
	px := out.Pixels()
	sizes := out.Sizes()

	q := newPixelQueue(64)
	findEdgePixels(out, findObject, list0, offsets0, outsideIsObject, q)

	// First iteration: flip every seeded edge pixel in place. The queue is
	// left untouched so the flipped pixels form the frontier of the next
	// round.
	if o.Iterations > 0 {
		if findObject {
			for _, off := range q.pending() {
				px[off] &^= dataBit
			}
		} else {
			for _, off := range q.pending() {
				px[off] |= dataBit
			}
		}
	}

	coords := make([]int, nd)
	for iter := 1; iter < o.Iterations; iter++ {
		list, offsets := list0, offsets0
		if iter&1 != 0 {
			list, offsets = list1, offsets1
		}

		// Only the pixels queued before this round belong to the current
		// frontier; pixels flipped below are processed next round.
		for count := q.size(); count > 0; count-- {
			off := q.pop()
			isBorder := px[off]&borderBit != 0
			if isBorder {
				out.CoordsInto(off, coords)
			}
			for i, noff := range offsets {
				// Bounds checks cost only where they can fail.
				if isBorder && !list.IsInside(coords, sizes, i) {
					continue
				}
				nb := off + noff
				if (px[nb]&dataBit != 0) == findObject {
					// Flipping the bit here doubles as the "already
					// enqueued" marker.
					if findObject {
						px[nb] &^= dataBit
					} else {
						px[nb] |= dataBit
					}
					q.push(nb)
				}
			}
		}
	}

	out.ClearBorder(borderBit)
	return out, nil
}
