package hitmiss

import (
	"math"

	"github.com/katalvlaran/binmorph/binimg"
)

// Interval is a trinary structuring element for the hit-or-miss transform:
// every kernel position requires foreground (hit, 1), requires background
// (miss, 0), or does not participate (don't-care, NaN). Sizes are odd in
// every dimension so the center pixel is well defined, and at least one
// position is a hit.
//
// Intervals are values. The 90-degree rotations produced by
// GenerateRotatedVersions are views that share backing storage with their
// base; Invert recognizes such families and flips each backing array exactly
// once.
type Interval struct {
	data    []float64
	sizes   []int
	strides []int
	origin  int
}

// New builds an interval from values laid out in row-major order (first
// dimension fastest). Exactly 0 is a miss and exactly 1 is a hit; every
// other value, NaN included, becomes a don't-care.
func New(values []float64, sizes ...int) (Interval, error) {
	if len(sizes) == 0 {
		return Interval{}, binimg.ErrBadDimensions
	}
	n := 1
	for _, s := range sizes {
		if s < 1 {
			return Interval{}, binimg.ErrBadDimensions
		}
		if s%2 == 0 {
			return Interval{}, ErrEvenIntervalSize
		}
		n *= s
	}
	if len(values) != n {
		return Interval{}, binimg.ErrBadDimensions
	}

	data := make([]float64, n)
	hits := 0
	for i, v := range values {
		switch v {
		case 0:
			data[i] = 0
		case 1:
			data[i] = 1
			hits++
		default:
			data[i] = math.NaN()
		}
	}
	if hits == 0 {
		return Interval{}, ErrNoHits
	}

	sz := make([]int, len(sizes))
	copy(sz, sizes)
	return Interval{data: data, sizes: sz, strides: normalStrides(sz)}, nil
}

// FromImages builds an interval from a hit image and a miss image of the
// same odd sizes. Pixels set in hit become hits, pixels set in miss become
// misses, and everything else is don't-care. The two sets must be disjoint.
func FromImages(hit, miss *binimg.Image) (Interval, error) {
	if !hit.IsForged() || !miss.IsForged() {
		return Interval{}, binimg.ErrNotForged
	}
	if !binimg.SameSizes(hit, miss) {
		return Interval{}, binimg.ErrSizeMismatch
	}
	sizes := hit.Sizes()
	n := 1
	for _, s := range sizes {
		if s%2 == 0 {
			return Interval{}, ErrEvenIntervalSize
		}
		n *= s
	}

	hp := hit.Pixels()
	mp := miss.Pixels()
	data := make([]float64, n)
	hits := 0
	for i := range data {
		h := hp[i]&binimg.DataBit != 0
		m := mp[i]&binimg.DataBit != 0
		switch {
		case h && m:
			return Interval{}, ErrOverlappingHitMiss
		case h:
			data[i] = 1
			hits++
		case m:
			data[i] = 0
		default:
			data[i] = math.NaN()
		}
	}
	if hits == 0 {
		return Interval{}, ErrNoHits
	}
	return Interval{data: data, sizes: sizes, strides: normalStrides(sizes)}, nil
}

// IsValid reports whether the interval was produced by a constructor, as
// opposed to being the zero value.
func (iv Interval) IsValid() bool {
	return iv.data != nil
}

// Sizes returns the kernel extents. The slice is a copy.
func (iv Interval) Sizes() []int {
	sz := make([]int, len(iv.sizes))
	copy(sz, iv.sizes)
	return sz
}

// Dimensionality returns the number of kernel dimensions.
func (iv Interval) Dimensionality() int {
	return len(iv.sizes)
}

// HitCount returns the number of hit positions.
func (iv Interval) HitCount() int {
	n := 0
	for _, v := range iv.data {
		if v == 1 {
			n++
		}
	}
	return n
}

// At returns the kernel value at the given coordinates: 1 for a hit, 0 for
// a miss, NaN for a don't-care.
func (iv Interval) At(coords ...int) (float64, error) {
	if iv.data == nil {
		return 0, binimg.ErrNotForged
	}
	if len(coords) != len(iv.sizes) {
		return 0, binimg.ErrBadDimensions
	}
	for d, c := range coords {
		if c < 0 || c >= iv.sizes[d] {
			return 0, binimg.ErrOutOfRange
		}
	}
	return iv.data[iv.offsetAt(coords)], nil
}

// Inverted returns a copy with hits and misses exchanged. Don't-cares stay,
// and the copy always has fresh storage in standard layout.
func (iv Interval) Inverted() Interval {
	if iv.data == nil {
		return Interval{}
	}
	out := iv.materialize()
	out.invertData()
	return out
}

// Invert exchanges hits and misses of every interval, in place. Rotated
// families share backing storage between their members; each backing array
// is flipped exactly once, so every view of it stays consistent.
func Invert(ivs []Interval) {
	for i := range ivs {
		shared := false
		for j := 0; j < i && !shared; j++ {
			shared = sharesData(ivs[i], ivs[j])
		}
		if !shared {
			ivs[i].invertData()
		}
	}
}

// invertData flips hits and misses on the backing array. Views over the
// same array see the change.
func (iv Interval) invertData() {
	for i, v := range iv.data {
		switch v {
		case 0:
			iv.data[i] = 1
		case 1:
			iv.data[i] = 0
		}
	}
}

func sharesData(a, b Interval) bool {
	return len(a.data) > 0 && len(b.data) > 0 && &a.data[0] == &b.data[0]
}

// RotateBy45 returns the interval rotated clockwise by 45 degrees. The
// kernel must be 2-D; a non-square kernel is first padded to square with
// miss pixels, centered. Each square ring of pixels shifts along itself by
// one eighth of its length, so eight applications restore the original.
func (iv Interval) RotateBy45() (Interval, error) {
	if iv.data == nil {
		return Interval{}, binimg.ErrNotForged
	}
	if len(iv.sizes) != 2 {
		return Interval{}, ErrNot2D
	}
	out := iv.materializeSquare()
	rotate45InPlace(out.data, out.sizes[0])
	return out, nil
}

// GenerateRotatedVersions returns the family of rotations of the interval
// in steps of angle degrees: 8 intervals for 45, 4 for 90, 2 for 180. The
// kernel must be 2-D. The first element shares storage with the receiver
// and the 90-degree steps within the family are views sharing storage with
// each other; pass the result to Invert to flip the whole family safely.
//
// The interleaved orderings place each rotation next to its 180-degree
// opposite: 0, 180, 45, 225, 90, 270, 135, 315 for the 45-degree family and
// 0, 180, 90, 270 for the 90-degree family.
func (iv Interval) GenerateRotatedVersions(angle int, order RotationOrder) ([]Interval, error) {
	if iv.data == nil {
		return nil, binimg.ErrNotForged
	}
	if len(iv.sizes) != 2 {
		return nil, ErrNot2D
	}
	var step int
	switch angle {
	case 45:
		step = 1
	case 90:
		step = 2
	case 180:
		step = 4
	default:
		return nil, ErrBadAngle
	}
	var interleaved, clockwise bool
	switch order {
	case Clockwise:
		clockwise = true
	case CounterClockwise:
	case InterleavedClockwise:
		interleaved, clockwise = true, true
	case InterleavedCounterClockwise:
		interleaved = true
	default:
		return nil, ErrBadRotationOrder
	}

	n := 8 / step
	out := make([]Interval, n)
	out[0] = iv
	if step == 1 {
		// The odd multiples of 45 degrees: one shell rotation, then
		// 90-degree views of it.
		cur := 7
		if clockwise {
			cur = 1
		}
		r, err := iv.RotateBy45()
		if err != nil {
			return nil, err
		}
		out[cur] = r
		for i := 0; i < 3; i++ {
			next := cur - 2
			if clockwise {
				next = cur + 2
			}
			out[next] = out[cur].rotated90()
			cur = next
		}
	}
	if step != 4 {
		// The multiples of 90 degrees, reached with an index stride of
		// 3-step: every other element for the 45-degree family, every
		// element for the 90-degree one.
		stride := 3 - step
		cur := 0
		for i := 0; i < 3; i++ {
			var next int
			switch {
			case clockwise:
				next = cur + stride
			case cur == 0:
				next = n - stride
			default:
				next = cur - stride
			}
			out[next] = out[cur].rotated90()
			cur = next
		}
	} else {
		out[1] = out[0].rotated90().rotated90()
	}

	if interleaved {
		switch step {
		case 1:
			// 0, 45, 90, 135, 180, 225, 270, 315
			// becomes 0, 180, 45, 225, 90, 270, 135, 315.
			tmp := out[1]
			out[1] = out[4]
			out[4] = out[2]
			out[2] = tmp
			tmp = out[3]
			out[3] = out[5]
			out[5] = out[6]
			out[6] = tmp
		case 2:
			out[1], out[2] = out[2], out[1]
		}
	}
	return out, nil
}

// rotated90 returns a 90-degree clockwise rotation as a view over the same
// backing array: strides swap with one negation and the origin moves to the
// old bottom-left corner. 2-D only.
func (iv Interval) rotated90() Interval {
	w, h := iv.sizes[0], iv.sizes[1]
	return Interval{
		data:    iv.data,
		sizes:   []int{h, w},
		strides: []int{-iv.strides[1], iv.strides[0]},
		origin:  iv.origin + (h-1)*iv.strides[1],
	}
}

// rotate45InPlace shifts every square ring of an n-by-n kernel along itself
// by one eighth of its length, clockwise. Rings rotate independently; the
// center pixel stays. data must be in standard layout.
func rotate45InPlace(data []float64, n int) {
	stepX, stepY := 1, n
	base := 0
	for shell := 0; shell < n/2; shell++ {
		half := n/2 - shell // pixels in half an edge of this ring
		nStepX, nStepY := half*stepX, half*stepY
		nEndX, nEndY := 2*nStepX, 2*nStepY
		for i := 0; i < half; i++ {
			iX, iY := i*stepX, i*stepY
			p1 := base + iX
			p2 := base + nStepY - iY
			v := data[p1]
			data[p1] = data[p2]
			p1 = p2
			p2 += nStepY
			data[p1] = data[p2]
			p1 = p2
			p2 = base + nStepX - iX + nEndY
			data[p1] = data[p2]
			p1 = p2
			p2 += nStepX
			data[p1] = data[p2]
			p1 = p2
			p2 = base + nEndX + iY + nStepY
			data[p1] = data[p2]
			p1 = p2
			p2 -= nStepY
			data[p1] = data[p2]
			p1 = p2
			p2 = base + nStepX + iX
			data[p1] = data[p2]
			data[p2] = v
		}
		base += stepX + stepY
	}
}

// materialize returns a fresh copy in standard layout, resolving any view
// strides.
func (iv Interval) materialize() Interval {
	sz := make([]int, len(iv.sizes))
	copy(sz, iv.sizes)
	out := Interval{
		data:    make([]float64, len(iv.data)),
		sizes:   sz,
		strides: normalStrides(sz),
	}
	coords := make([]int, len(sz))
	for i := range out.data {
		out.data[i] = iv.data[iv.offsetAt(coords)]
		advanceCoords(coords, sz)
	}
	return out
}

// materializeSquare is materialize with centered zero padding to a square
// when the 2-D kernel is rectangular.
func (iv Interval) materializeSquare() Interval {
	w, h := iv.sizes[0], iv.sizes[1]
	if w == h {
		return iv.materialize()
	}
	n := w
	if h > n {
		n = h
	}
	out := Interval{
		data:    make([]float64, n*n),
		sizes:   []int{n, n},
		strides: []int{1, n},
	}
	x0, y0 := (n-w)/2, (n-h)/2
	coords := make([]int, 2)
	for {
		out.data[(x0+coords[0])+(y0+coords[1])*n] = iv.data[iv.offsetAt(coords)]
		if !advanceCoords(coords, iv.sizes) {
			return out
		}
	}
}

func (iv Interval) offsetAt(coords []int) int {
	off := iv.origin
	for d, c := range coords {
		off += c * iv.strides[d]
	}
	return off
}

// advanceCoords steps coords through the odometer order (first dimension
// fastest) and reports false once it wraps back to all zeros.
func advanceCoords(coords, sizes []int) bool {
	for d := range coords {
		coords[d]++
		if coords[d] < sizes[d] {
			return true
		}
		coords[d] = 0
	}
	return false
}

func normalStrides(sizes []int) []int {
	strides := make([]int, len(sizes))
	acc := 1
	for d, s := range sizes {
		strides[d] = acc
		acc *= s
	}
	return strides
}
