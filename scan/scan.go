// Package scan decomposes an image into scanlines and dispatches per-line
// work, sequentially or over a small pool of goroutines.
//
// The stateless morphological passes (hit-or-miss tests, neighbor counting)
// write disjoint output lines from read-only inputs, so they parallelize
// per scanline without locking. Plan captures the decomposition once per
// call: line starts, line coordinates, and which lines touch the image
// border in a non-processing dimension (those need the slow, bounds-checked
// filter path).
package scan

import (
	"errors"
	"sync"
)

// ErrBadPlan indicates an invalid shape description: mismatched rank, a
// non-positive extent, or an out-of-range processing dimension.
var ErrBadPlan = errors.New("scan: invalid plan specification")

// AutoDim selects the processing dimension automatically (smallest stride
// among dimensions longer than one pixel).
const AutoDim = -1

// Plan is the scanline decomposition of one image shape: every image line
// along the processing dimension, in odometer order of the remaining
// coordinates.
type Plan struct {
	dim     int
	length  int
	stride  int
	starts  []int
	coords  [][]int
	border  []bool
}

// NewPlan builds the decomposition for an image with the given sizes and
// strides. dim selects the processing dimension; AutoDim picks the dimension
// with the smallest stride among those with more than one pixel.
//
// Complexity: O(number of lines × dimensionality).
func NewPlan(sizes, strides []int, dim int) (*Plan, error) {
	nd := len(sizes)
	if nd < 1 || len(strides) != nd {
		return nil, ErrBadPlan
	}
	for _, s := range sizes {
		if s < 1 {
			return nil, ErrBadPlan
		}
	}
	if dim == AutoDim {
		dim = optimalDim(sizes, strides)
	}
	if dim < 0 || dim >= nd {
		return nil, ErrBadPlan
	}

	p := &Plan{
		dim:    dim,
		length: sizes[dim],
		stride: strides[dim],
	}
	coords := make([]int, nd)
	for {
		start := 0
		onBorder := false
		for d := 0; d < nd; d++ {
			if d == dim {
				continue
			}
			start += coords[d] * strides[d]
			if coords[d] == 0 || coords[d] == sizes[d]-1 {
				onBorder = true
			}
		}
		cc := make([]int, nd)
		copy(cc, coords)
		p.starts = append(p.starts, start)
		p.coords = append(p.coords, cc)
		p.border = append(p.border, onBorder)

		d := 0
		for ; d < nd; d++ {
			if d == dim {
				continue
			}
			coords[d]++
			if coords[d] < sizes[d] {
				break
			}
			coords[d] = 0
		}
		if d == nd {
			return p, nil
		}
	}
}

// optimalDim picks the dimension with the smallest stride among those longer
// than one pixel, falling back to 0 when every extent is 1.
func optimalDim(sizes, strides []int) int {
	best, bestStride := 0, 0
	for d, s := range sizes {
		if s <= 1 {
			continue
		}
		st := strides[d]
		if st < 0 {
			st = -st
		}
		if bestStride == 0 || st < bestStride {
			best, bestStride = d, st
		}
	}
	return best
}

// Dim returns the processing dimension.
func (p *Plan) Dim() int { return p.dim }

// Lines returns the number of scanlines.
func (p *Plan) Lines() int { return len(p.starts) }

// LineLength returns the pixel count per scanline.
func (p *Plan) LineLength() int { return p.length }

// Stride returns the memory step between consecutive pixels of a line.
func (p *Plan) Stride() int { return p.stride }

// Start returns the buffer offset of the first pixel of a line.
func (p *Plan) Start(line int) int { return p.starts[line] }

// Coords returns the coordinates of the first pixel of a line. The slice
// aliases the plan; callers must not modify it.
func (p *Plan) Coords(line int) []int { return p.coords[line] }

// OnBorder reports whether the line touches the image border in any
// non-processing dimension.
func (p *Plan) OnBorder(line int) bool { return p.border[line] }

// Run invokes fn once per line. workers <= 1 runs sequentially in line
// order; otherwise contiguous line ranges are distributed over min(workers,
// lines) goroutines and Run blocks until every line is done. fn must not
// touch another line's output.
func (p *Plan) Run(workers int, fn func(line int)) {
	n := len(p.starts)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for line := 0; line < n; line++ {
			fn(line)
		}
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for line := lo; line < hi; line++ {
				fn(line)
			}
		}(lo, hi)
	}
	wg.Wait()
}
