package morph

import (
	"fmt"

	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/neighbors"
	"github.com/katalvlaran/binmorph/scan"
)

// Propagation performs seeded propagation of the seed image within the mask
// image: objects in seed grow, constrained to objects in mask, for the given
// number of steps. With zero iterations the propagation runs until
// stability, which makes it the binary equivalent of morphological
// reconstruction by dilation.
//
// A nil or unforged seed is treated as empty. When the edge condition is
// EdgeObject, the virtual outside of the image acts as a seed, so mask
// objects connected to the border are reconstructed; this is what
// EdgeObjectsRemove builds on. Seed pixels outside the mask are discarded,
// so the result always satisfies seed∩mask ⊆ result ⊆ mask.
//
// Defaults: connectivity 1, 0 iterations (until stability), EdgeBackground.
// Negative (alternating) connectivities are honored for finite iteration
// counts; when running to stability the alternation makes no difference to
// the result, and the full neighborhood is used instead.
func Propagation(seed, mask *binimg.Image, opts ...Option) (*binimg.Image, error) {
	o := buildOptions(propagationDefaults(), opts)
	out, err := propagate(seed, mask, o)
	if err != nil {
		return nil, fmt.Errorf("Propagation: %w", err)
	}
	return out, nil
}

func propagate(seed, mask *binimg.Image, o Options) (*binimg.Image, error) {
	if !mask.IsForged() {
		return nil, binimg.ErrNotForged
	}
	hasSeed := seed.IsForged()
	if hasSeed && !binimg.SameSizes(seed, mask) {
		return nil, binimg.ErrSizeMismatch
	}
	if o.Iterations < 0 {
		return nil, ErrBadIterations
	}
	nd := mask.Dimensionality()
	if o.Connectivity > nd {
		return nil, neighbors.ErrBadConnectivity
	}
	outsideIsObject, err := o.Edge.outsideIsObject()
	if err != nil {
		return nil, err
	}

	var out *binimg.Image
	if hasSeed {
		out = seed.Clone()
	} else {
		out, err = binimg.New(mask.Sizes()...)
		if err != nil {
			return nil, err
		}
	}

	if o.Iterations == 0 {
		conn := o.Connectivity
		if conn < 0 {
			// Alternation cannot change the result when running to
			// stability, so the full neighborhood is used.
			conn = neighbors.Full
		}
		if err = propagateFast(out, mask, conn, outsideIsObject); err != nil {
			return nil, err
		}
		return out, nil
	}
	if err = propagateIterative(out, mask, o.Connectivity, o.Iterations, outsideIsObject); err != nil {
		return nil, err
	}
	return out, nil
}

// propagateIterative runs the queue-driven variant for a finite number of
// steps. It reuses the dilation machinery with one extra bit plane: the mask
// is folded into each status byte, and a pixel is flipped only when its byte
// shows "mask allows, not yet reached".
func propagateIterative(out, mask *binimg.Image, connectivity, iterations int, outsideIsObject bool) error {
	nd := out.Dimensionality()
	conn0, err := neighbors.Resolve(nd, connectivity, 0)
	if err != nil {
		return err
	}
	conn1, err := neighbors.Resolve(nd, connectivity, 1)
	if err != nil {
		return err
	}
	list0, err := neighbors.New(nd, conn0)
	if err != nil {
		return err
	}
	list1, err := neighbors.New(nd, conn1)
	if err != nil {
		return err
	}
	strides := out.Strides()
	offsets0, err := list0.Offsets(strides)
	if err != nil {
		return err
	}
	offsets1, err := list1.Offsets(strides)
	if err != nil {
		return err
	}

	out.MarkBorder(borderBit)

	px := out.Pixels()
	for i, b := range mask.Pixels() {
		if b&dataBit != 0 {
			px[i] |= maskBit
		}
	}

	// Seeding finds background edge pixels: pixels the seed could grow into
	// on the first step. Whether it actually grows there is decided below,
	// by the mask bit.
	q := newPixelQueue(64)
	findEdgePixels(out, false, list0, offsets0, outsideIsObject, q)

	// First iteration: turn on the queued pixels the mask allows, and keep
	// only those as the frontier.
	for count := q.size(); count > 0; count-- {
		off := q.pop()
		if px[off]&(maskBit|dataBit) == maskBit {
			px[off] |= dataBit
			q.push(off)
		}
	}

	sizes := out.Sizes()
	coords := make([]int, nd)
	for iter := 1; iter < iterations && !q.empty(); iter++ {
		list, offsets := list0, offsets0
		if iter&1 != 0 {
			list, offsets = list1, offsets1
		}
		for count := q.size(); count > 0; count-- {
			off := q.pop()
			isBorder := px[off]&borderBit != 0
			if isBorder {
				out.CoordsInto(off, coords)
			}
			for i, noff := range offsets {
				if isBorder && !list.IsInside(coords, sizes, i) {
					continue
				}
				nb := off + noff
				// Mask bit set means propagation allowed, data bit set
				// means already reached.
				if px[nb]&(maskBit|dataBit) == maskBit {
					px[nb] |= dataBit
					q.push(nb)
				}
			}
		}
	}

	// A pixel survives iff it was reached and the mask allows it. Writing
	// plain 0/1 strips every scratch plane, border bit included.
	for i, b := range px {
		if b&(maskBit|dataBit) == maskBit|dataBit {
			px[i] = dataBit
		} else {
			px[i] = 0
		}
	}
	return nil
}

// propagateFast runs the until-stability variant: two raster sweeps followed
// by a flood fill from the pixels the sweeps could not finish. It keeps the
// three images (out, mask, border state) separate instead of packing bit
// planes into one byte; with the early-exit sweeps this is considerably
// faster than iterating the queue variant to convergence.
func propagateFast(out, mask *binimg.Image, connectivity int, outsideIsObject bool) error {
	nd := out.Dimensionality()
	list, err := neighbors.New(nd, connectivity)
	if err != nil {
		return err
	}
	strides := out.Strides()
	sizes := out.Sizes()
	offsets, err := list.Offsets(strides)
	if err != nil {
		return err
	}
	back := list.SelectBackward(0)
	fwd := list.SelectForward(0)
	backOffsets, err := back.Offsets(strides)
	if err != nil {
		return err
	}
	fwdOffsets, err := fwd.Offsets(strides)
	if err != nil {
		return err
	}
	plan, err := scan.NewPlan(sizes, strides, 0)
	if err != nil {
		return err
	}

	op := out.Pixels()
	mp := mask.Pixels()
	lineLen := plan.LineLength()
	last := lineLen - 1
	pc := make([]int, nd)

	// Forward raster pass: pull values from the already-visited half of the
	// neighborhood.
	for line := 0; line < plan.Lines(); line++ {
		start := plan.Start(line)
		lineOnShell := plan.OnBorder(line)
		for x := 0; x < lineLen; x++ {
			off := start + x
			if op[off]&dataBit != 0 || mp[off]&dataBit == 0 {
				continue
			}
			if lineOnShell || x == 0 || x == last {
				if outsideIsObject {
					op[off] = dataBit
					continue
				}
				copy(pc, plan.Coords(line))
				pc[0] = x
				for i, noff := range backOffsets {
					if back.IsInside(pc, sizes, i) && op[off+noff]&dataBit != 0 {
						op[off] = dataBit
						break
					}
				}
			} else {
				for _, noff := range backOffsets {
					if op[off+noff]&dataBit != 0 {
						op[off] = dataBit
						break
					}
				}
			}
		}
	}

	// Backward raster pass: pull values from the other half, and remember
	// every pixel that turned on while still having an off neighbor in the
	// mask. Those are the only places the sweeps may have left unfinished.
	stack := make([]int, 0, 64)
	for line := plan.Lines() - 1; line >= 0; line-- {
		start := plan.Start(line)
		lineOnShell := plan.OnBorder(line)
		for x := last; x >= 0; x-- {
			off := start + x
			if op[off]&dataBit != 0 || mp[off]&dataBit == 0 {
				continue
			}
			hasObject, hasBackground := false, false
			if lineOnShell || x == 0 || x == last {
				if outsideIsObject {
					hasObject = true
				}
				copy(pc, plan.Coords(line))
				pc[0] = x
				for i, noff := range fwdOffsets {
					if fwd.IsInside(pc, sizes, i) {
						if op[off+noff]&dataBit != 0 {
							hasObject = true
						} else {
							hasBackground = true
						}
					}
					if hasObject && hasBackground {
						break
					}
				}
			} else {
				for _, noff := range fwdOffsets {
					if op[off+noff]&dataBit != 0 {
						hasObject = true
					} else {
						hasBackground = true
					}
					if hasObject && hasBackground {
						break
					}
				}
			}
			if hasObject {
				op[off] = dataBit
				if hasBackground {
					stack = append(stack, off)
				}
			}
		}
	}

	// Cleanup pass: flood in every direction from the remembered pixels.
	// Order does not matter here, so a LIFO stack serves as the queue.
	coords := make([]int, nd)
	for len(stack) > 0 {
		off := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out.CoordsInto(off, coords)
		onShell := false
		for d, c := range coords {
			if c == 0 || c == sizes[d]-1 {
				onShell = true
				break
			}
		}
		for i, noff := range offsets {
			if onShell && !list.IsInside(coords, sizes, i) {
				continue
			}
			nb := off + noff
			if op[nb]&dataBit == 0 && mp[nb]&dataBit != 0 {
				op[nb] = dataBit
				stack = append(stack, nb)
			}
		}
	}

	// Seed pixels outside the mask are dropped only now, matching the
	// iterative variant.
	for i := range op {
		op[i] &= mp[i] & dataBit
	}
	return nil
}
