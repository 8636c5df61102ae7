package hitmiss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/scan"
)

// SupGenerating applies the hit-or-miss transform with a single interval:
// an output pixel is foreground exactly when every hit position reads
// foreground and every miss position reads background in the input
// neighborhood. Don't-care positions are ignored.
//
// With the default boundary mode the input is padded with background by the
// kernel radius and the output keeps the input sizes; with AlreadyExpanded
// the output shrinks by the radius instead.
func SupGenerating(in *binimg.Image, iv Interval, opts ...Option) (*binimg.Image, error) {
	out, err := combineGenerating(in, []Interval{iv}, buildOptions(defaultOptions(), opts), true)
	if err != nil {
		return nil, fmt.Errorf("SupGenerating: %w", err)
	}
	return out, nil
}

// InfGenerating applies the dual transform: the output is the inverted
// hit-or-miss transform of the inverted input, so a pixel is background
// exactly when every hit position reads background and every miss position
// reads foreground.
func InfGenerating(in *binimg.Image, iv Interval, opts ...Option) (*binimg.Image, error) {
	out, err := combineGenerating(in, []Interval{iv}, buildOptions(defaultOptions(), opts), false)
	if err != nil {
		return nil, fmt.Errorf("InfGenerating: %w", err)
	}
	return out, nil
}

// UnionSupGenerating applies SupGenerating for each interval of the array
// and ORs the results together. The input is padded once, by the maximal
// kernel radius over the array.
func UnionSupGenerating(in *binimg.Image, ivs []Interval, opts ...Option) (*binimg.Image, error) {
	out, err := combineGenerating(in, ivs, buildOptions(defaultOptions(), opts), true)
	if err != nil {
		return nil, fmt.Errorf("UnionSupGenerating: %w", err)
	}
	return out, nil
}

// IntersectionInfGenerating applies InfGenerating for each interval of the
// array and ANDs the results together, with the same shared padding as
// UnionSupGenerating.
func IntersectionInfGenerating(in *binimg.Image, ivs []Interval, opts ...Option) (*binimg.Image, error) {
	out, err := combineGenerating(in, ivs, buildOptions(defaultOptions(), opts), false)
	if err != nil {
		return nil, fmt.Errorf("IntersectionInfGenerating: %w", err)
	}
	return out, nil
}

func combineGenerating(in *binimg.Image, ivs []Interval, o Options, sup bool) (*binimg.Image, error) {
	if !in.IsForged() {
		return nil, binimg.ErrNotForged
	}
	if len(ivs) == 0 {
		return nil, ErrEmptyIntervalArray
	}
	border, err := intervalBorder(ivs, in.Dimensionality())
	if err != nil {
		return nil, err
	}
	work, outSizes, err := expandForIntervals(in, border, o.Boundary)
	if err != nil {
		return nil, err
	}

	out, err := binimg.New(outSizes...)
	if err != nil {
		return nil, err
	}
	if err := supInfPass(work, border, out, buildKernelTable(ivs[0], work.Strides()), o.Workers, sup); err != nil {
		return nil, err
	}
	for _, iv := range ivs[1:] {
		tmp, err := binimg.New(outSizes...)
		if err != nil {
			return nil, err
		}
		if err := supInfPass(work, border, tmp, buildKernelTable(iv, work.Strides()), o.Workers, sup); err != nil {
			return nil, err
		}
		if sup {
			out, err = binimg.Or(out, tmp)
		} else {
			out, err = binimg.And(out, tmp)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// supInfPass evaluates one interval over the padded working image and
// writes the result. work is only read; offsets in the table are in work
// stride space, and border maps output coordinates into work coordinates.
func supInfPass(work *binimg.Image, border []int, out *binimg.Image, tab kernelTable, workers int, sup bool) error {
	plan, err := scan.NewPlan(out.Sizes(), out.Strides(), scan.AutoDim)
	if err != nil {
		return err
	}
	wp := work.Pixels()
	op := out.Pixels()
	wStrides := work.Strides()
	wStep := wStrides[plan.Dim()]
	oStep := plan.Stride()
	length := plan.LineLength()

	plan.Run(workers, func(line int) {
		wOff := 0
		for d, c := range plan.Coords(line) {
			wOff += (c + border[d]) * wStrides[d]
		}
		oOff := plan.Start(line)
		for i := 0; i < length; i++ {
			res := sup
			if sup {
				for j, k := range tab.offsets {
					if wp[wOff+k]&binimg.DataBit != tab.want[j] {
						res = false
						break
					}
				}
			} else {
				for j, k := range tab.offsets {
					if wp[wOff+k]&binimg.DataBit == tab.want[j] {
						res = true
						break
					}
				}
			}
			if res {
				op[oOff] = binimg.DataBit
			} else {
				op[oOff] = 0
			}
			wOff += wStep
			oOff += oStep
		}
	})
	return nil
}

// kernelTable is one interval flattened against a concrete image geometry:
// buffer offsets relative to the center pixel, and the pixel value each
// offset requires. Don't-care positions are absent.
type kernelTable struct {
	offsets []int
	want    []uint8
}

func buildKernelTable(iv Interval, strides []int) kernelTable {
	var tab kernelTable
	coords := make([]int, len(iv.sizes))
	for {
		v := iv.data[iv.offsetAt(coords)]
		if !math.IsNaN(v) {
			off := 0
			for d, c := range coords {
				off += (c - iv.sizes[d]/2) * strides[d]
			}
			tab.offsets = append(tab.offsets, off)
			tab.want = append(tab.want, uint8(v))
		}
		if !advanceCoords(coords, iv.sizes) {
			return tab
		}
	}
}

// intervalBorder returns the elementwise maximum kernel radius over the
// array, validating that every interval is constructed and nd-dimensional.
func intervalBorder(ivs []Interval, nd int) ([]int, error) {
	border := make([]int, nd)
	for _, iv := range ivs {
		if iv.data == nil {
			return nil, binimg.ErrNotForged
		}
		if len(iv.sizes) != nd {
			return nil, binimg.ErrBadDimensions
		}
		for d, s := range iv.sizes {
			if r := s / 2; r > border[d] {
				border[d] = r
			}
		}
	}
	return border, nil
}

// expandForIntervals prepares the padded working image for a pass and
// reports the output sizes. The default mode pads with background; the
// already-expanded mode aliases the input, whose own padding must leave at
// least one interior pixel per dimension.
func expandForIntervals(in *binimg.Image, border []int, boundary BoundaryMode) (*binimg.Image, []int, error) {
	switch boundary {
	case "":
		work, err := binimg.Extend(in, border, false)
		if err != nil {
			return nil, nil, err
		}
		return work, in.Sizes(), nil
	case AlreadyExpanded:
		outSizes := in.Sizes()
		for d := range outSizes {
			outSizes[d] -= 2 * border[d]
			if outSizes[d] < 1 {
				return nil, nil, ErrBadBoundary
			}
		}
		return in, outSizes, nil
	}
	return nil, nil, ErrBadBoundary
}
