package morph

import (
	"fmt"

	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/neighbors"
	"github.com/katalvlaran/binmorph/scan"
)

// CountNeighbors produces, for every pixel, the number of object pixels in
// its closed neighborhood: the center counts along with its neighbors, so a
// lone object pixel scores 1. Neighbors outside the image count as the edge
// condition's value.
//
// Defaults: full connectivity, CountForeground (background pixels yield
// zero without counting), EdgeBackground, sequential. Alternating
// connectivities make no sense for a single-pass filter and are rejected.
// Use WithWorkers to spread the per-line work over goroutines.
func CountNeighbors(in *binimg.Image, opts ...Option) (*binimg.ByteImage, error) {
	o := buildOptions(countDefaults(), opts)
	var all bool
	switch o.Mode {
	case CountAll:
		all = true
	case CountForeground:
		all = false
	default:
		return nil, fmt.Errorf("CountNeighbors: %w", ErrBadCountMode)
	}
	if !in.IsForged() {
		return nil, fmt.Errorf("CountNeighbors: %w", binimg.ErrNotForged)
	}
	out, err := binimg.NewByte(in.Sizes()...)
	if err != nil {
		return nil, fmt.Errorf("CountNeighbors: %w", err)
	}
	if err = countInto(in, out.Values(), o, all, false); err != nil {
		return nil, fmt.Errorf("CountNeighbors: %w", err)
	}
	return out, nil
}

// MajorityVote sets each output pixel to the value of the majority of its
// closed neighborhood: object when more than half of the pixel itself plus
// its neighbors are object. Applied repeatedly it smooths ragged object
// boundaries and dissolves small specks of either polarity.
//
// Defaults: full connectivity, EdgeBackground, sequential.
func MajorityVote(in *binimg.Image, opts ...Option) (*binimg.Image, error) {
	o := buildOptions(majorityDefaults(), opts)
	if !in.IsForged() {
		return nil, fmt.Errorf("MajorityVote: %w", binimg.ErrNotForged)
	}
	out, err := binimg.New(in.Sizes()...)
	if err != nil {
		return nil, fmt.Errorf("MajorityVote: %w", err)
	}
	if err = countInto(in, out.Pixels(), o, true, true); err != nil {
		return nil, fmt.Errorf("MajorityVote: %w", err)
	}
	return out, nil
}

// countInto runs the neighbor-counting line filter over the whole image,
// writing counts (or majority bits) into dst. Lines on an image edge pay
// per-neighbor bounds checks for every pixel; interior lines only for their
// two end pixels.
func countInto(in *binimg.Image, dst []uint8, o Options, all, majority bool) error {
	edgeIsObject, err := o.Edge.outsideIsObject()
	if err != nil {
		return err
	}
	nd := in.Dimensionality()
	if o.Connectivity < 0 || o.Connectivity > nd {
		return neighbors.ErrBadConnectivity
	}
	list, err := neighbors.New(nd, o.Connectivity)
	if err != nil {
		return err
	}
	strides := in.Strides()
	offsets, err := list.Offsets(strides)
	if err != nil {
		return err
	}
	sizes := in.Sizes()
	plan, err := scan.NewPlan(sizes, strides, scan.AutoDim)
	if err != nil {
		return err
	}

	px := in.Pixels()
	dim := plan.Dim()
	step := plan.Stride()
	lineLen := plan.LineLength()
	threshold := uint8(list.Size() / 2)
	var edgeContrib uint8
	if edgeIsObject {
		edgeContrib = 1
	}

	countAt := func(off int, pc []int) uint8 {
		count := px[off] & dataBit
		for i, noff := range offsets {
			if list.IsInside(pc, sizes, i) {
				count += px[off+noff] & dataBit
			} else {
				count += edgeContrib
			}
		}
		return count
	}
	emit := func(off int, count uint8) {
		if !majority {
			dst[off] = count
			return
		}
		if count > threshold {
			dst[off] = 1
		} else {
			dst[off] = 0
		}
	}

	plan.Run(o.Workers, func(line int) {
		start := plan.Start(line)
		pc := make([]int, nd)
		copy(pc, plan.Coords(line))
		if plan.OnBorder(line) {
			for x := 0; x < lineLen; x++ {
				off := start + x*step
				if !all && px[off]&dataBit == 0 {
					dst[off] = 0
					continue
				}
				pc[dim] = x
				emit(off, countAt(off, pc))
			}
			return
		}
		checked := func(x int) {
			off := start + x*step
			if !all && px[off]&dataBit == 0 {
				dst[off] = 0
				return
			}
			pc[dim] = x
			emit(off, countAt(off, pc))
		}
		checked(0)
		for x := 1; x < lineLen-1; x++ {
			off := start + x*step
			if !all && px[off]&dataBit == 0 {
				dst[off] = 0
				continue
			}
			count := px[off] & dataBit
			for _, noff := range offsets {
				count += px[off+noff] & dataBit
			}
			emit(off, count)
		}
		if lineLen > 1 {
			checked(lineLen - 1)
		}
	})
	return nil
}
