package hitmiss

import (
	"fmt"

	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/scan"
)

// Thinning peels pixels off objects: in every pass, each interval's
// hit-or-miss matches are removed from the image, one interval after the
// other on double-buffered copies. An optional mask restricts where pixels
// may change; an unforged or nil mask allows changes everywhere. With zero
// iterations the passes repeat until one changes nothing; the result is
// then a fixed point of the interval array. An empty array returns a copy
// of the input.
func Thinning(in, mask *binimg.Image, ivs []Interval, opts ...Option) (*binimg.Image, error) {
	out, err := thickenThin(in, mask, ivs, buildOptions(defaultOptions(), opts), false)
	if err != nil {
		return nil, fmt.Errorf("Thinning: %w", err)
	}
	return out, nil
}

// Thickening is the dual of Thinning: each interval's matches are added to
// the image instead of removed. Growing a seed under a mask with the
// inverted thinning intervals is the usual way to compute thickenings such
// as skeletons of the background.
func Thickening(in, mask *binimg.Image, ivs []Interval, opts ...Option) (*binimg.Image, error) {
	out, err := thickenThin(in, mask, ivs, buildOptions(defaultOptions(), opts), true)
	if err != nil {
		return nil, fmt.Errorf("Thickening: %w", err)
	}
	return out, nil
}

func thickenThin(in, mask *binimg.Image, ivs []Interval, o Options, thicken bool) (*binimg.Image, error) {
	if !in.IsForged() {
		return nil, binimg.ErrNotForged
	}
	if o.Iterations < 0 {
		return nil, ErrBadIterations
	}
	border, err := intervalBorder(ivs, in.Dimensionality())
	if err != nil {
		return nil, err
	}
	work, outSizes, err := expandForIntervals(in, border, o.Boundary)
	if err != nil {
		return nil, err
	}
	work1 := work
	if work1 == in {
		// The passes flip pixels in their buffers; never in the caller's.
		work1 = in.Clone()
	}
	work2 := work1.Clone()

	out, err := binimg.New(outSizes...)
	if err != nil {
		return nil, err
	}
	var maskPx []uint8
	if mask.IsForged() {
		if !binimg.SameSizes(mask, out) {
			return nil, binimg.ErrSizeMismatch
		}
		maskPx = mask.Pixels()
	}

	plan, err := scan.NewPlan(out.Sizes(), out.Strides(), scan.AutoDim)
	if err != nil {
		return nil, err
	}
	tabs := make([]kernelTable, len(ivs))
	for i, iv := range ivs {
		tabs[i] = buildKernelTable(iv, work1.Strides())
	}

	// The padding ring of both buffers stays at its initial extension; the
	// passes only rewrite the interior, so matches keep seeing a stable
	// outside.
	lineChanged := make([]bool, plan.Lines())
	left := o.Iterations
	for {
		for i := range lineChanged {
			lineChanged[i] = false
		}
		for i := range tabs {
			thinPass(work1, work2, border, plan, maskPx, tabs[i], o.Workers, thicken, lineChanged)
			work1, work2 = work2, work1
		}
		if o.Iterations == 0 {
			if !anyLine(lineChanged) {
				break
			}
		} else {
			left--
			if left == 0 {
				break
			}
		}
	}

	extractInterior(work1, border, plan, out)
	return out, nil
}

// thinPass runs one interval over work1 and writes the next generation into
// work2. A pixel flips when the mask allows it, it has the polarity the
// direction wants (foreground for thinning, background for thickening) and
// the interval matches around it; everything else copies over unchanged.
func thinPass(work1, work2 *binimg.Image, border []int, plan *scan.Plan, maskPx []uint8, tab kernelTable, workers int, thicken bool, lineChanged []bool) {
	w1 := work1.Pixels()
	w2 := work2.Pixels()
	wStrides := work1.Strides()
	wStep := wStrides[plan.Dim()]
	mStep := plan.Stride()
	length := plan.LineLength()

	plan.Run(workers, func(line int) {
		wOff := 0
		for d, c := range plan.Coords(line) {
			wOff += (c + border[d]) * wStrides[d]
		}
		mOff := plan.Start(line)
		changed := false
		for i := 0; i < length; i++ {
			p := w1[wOff] & binimg.DataBit
			res := false
			if (maskPx == nil || maskPx[mOff]&binimg.DataBit != 0) && (p != 0) != thicken {
				res = true
				for j, k := range tab.offsets {
					if w1[wOff+k]&binimg.DataBit != tab.want[j] {
						res = false
						break
					}
				}
				changed = changed || res
			}
			v := p
			if res {
				if thicken {
					v = binimg.DataBit
				} else {
					v = 0
				}
			}
			w2[wOff] = v
			wOff += wStep
			mOff += mStep
		}
		if changed {
			lineChanged[line] = true
		}
	})
}

func anyLine(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}

// extractInterior copies the interior window of the working image into out,
// stripping everything but the data bit.
func extractInterior(work *binimg.Image, border []int, plan *scan.Plan, out *binimg.Image) {
	wp := work.Pixels()
	op := out.Pixels()
	wStrides := work.Strides()
	wStep := wStrides[plan.Dim()]
	oStep := plan.Stride()
	length := plan.LineLength()

	for line := 0; line < plan.Lines(); line++ {
		wOff := 0
		for d, c := range plan.Coords(line) {
			wOff += (c + border[d]) * wStrides[d]
		}
		oOff := plan.Start(line)
		for i := 0; i < length; i++ {
			op[oOff] = wp[wOff] & binimg.DataBit
			wOff += wStep
			oOff += oStep
		}
	}
}
