package neighbors

import (
	"gonum.org/v1/gonum/floats"
)

// List is an ordered table of the neighbors around a pixel: one relative
// coordinate vector and one metric length per entry. Entry order is the
// odometer order of {-1,0,1}^dims with dimension 0 varying fastest; the
// center itself is never part of the table. Engines rely on the order being
// deterministic, never on what it is.
type List struct {
	dims   int
	coords [][]int
	dist   []float64
}

// New builds the neighbor table for the given dimensionality and absolute
// connectivity (Full selects the dimensionality) assuming unit pixel sizes.
// Returns ErrBadDimensionality for dims < 1 and ErrBadConnectivity when the
// connectivity is negative or exceeds dims.
//
// Complexity: O(3^dims).
func New(dims, connectivity int) (List, error) {
	return NewWithPixelSize(dims, connectivity, nil)
}

// NewWithPixelSize is New with metric lengths scaled by per-dimension pixel
// sizes. A short pixel-size vector is padded by replicating its last element;
// an empty one means unit sizes.
func NewWithPixelSize(dims, connectivity int, pixelSize []float64) (List, error) {
	if dims < 1 {
		return List{}, ErrBadDimensionality
	}
	if connectivity < 0 || connectivity > dims {
		return List{}, ErrBadConnectivity
	}
	if connectivity == Full {
		connectivity = dims
	}
	ps := fixUpPixelSizes(pixelSize, dims)

	l := List{dims: dims}
	scaled := make([]float64, dims)
	coords := make([]int, dims)
	for d := range coords {
		coords[d] = -1
	}
	for {
		nonzero := 0
		for d, c := range coords {
			if c != 0 {
				nonzero++
			}
			scaled[d] = float64(c) * ps[d]
		}
		if nonzero > 0 && nonzero <= connectivity {
			cc := make([]int, dims)
			copy(cc, coords)
			l.coords = append(l.coords, cc)
			l.dist = append(l.dist, floats.Norm(scaled, 2))
		}
		d := 0
		for ; d < dims; d++ {
			coords[d]++
			if coords[d] <= 1 {
				break
			}
			coords[d] = -1
		}
		if d == dims {
			return l, nil
		}
	}
}

// fixUpPixelSizes pads a short vector by replicating its last element, crops
// a long one, and fills an empty one with unit sizes.
func fixUpPixelSizes(ps []float64, dims int) []float64 {
	out := make([]float64, dims)
	switch {
	case len(ps) == 0:
		for d := range out {
			out[d] = 1.0
		}
	case len(ps) < dims:
		copy(out, ps)
		for d := len(ps); d < dims; d++ {
			out[d] = ps[len(ps)-1]
		}
	default:
		copy(out, ps[:dims])
	}
	return out
}

// Size returns the number of neighbors in the table.
func (l List) Size() int {
	return len(l.coords)
}

// Dimensionality returns the rank of the coordinate vectors.
func (l List) Dimensionality() int {
	return l.dims
}

// Coords returns the relative coordinates of neighbor i. The slice aliases
// the table; callers must not modify it.
func (l List) Coords(i int) []int {
	return l.coords[i]
}

// Distance returns the metric length of neighbor i.
func (l List) Distance(i int) float64 {
	return l.dist[i]
}

// Offsets converts the table to linear buffer offsets for an image with the
// given strides (the dot product of each coordinate vector with strides).
// Returns ErrBadDimensionality on rank mismatch.
func (l List) Offsets(strides []int) ([]int, error) {
	if len(strides) != l.dims {
		return nil, ErrBadDimensionality
	}
	out := make([]int, len(l.coords))
	for i, cc := range l.coords {
		off := 0
		for d, c := range cc {
			off += c * strides[d]
		}
		out[i] = off
	}
	return out, nil
}

// Border returns, per dimension, how far the neighborhood reaches from its
// center. Pixels at least this far from every image edge never need bounds
// checks when dereferencing neighbors.
func (l List) Border() []int {
	border := make([]int, l.dims)
	for _, cc := range l.coords {
		for d, c := range cc {
			if c < 0 {
				c = -c
			}
			if c > border[d] {
				border[d] = c
			}
		}
	}
	return border
}

// IsInside reports whether neighbor i of the pixel at coords lies inside an
// image with the given sizes. Relative coordinates are tiny against image
// sizes, so unsigned wrap-around turns the two range checks into one.
func (l List) IsInside(coords, sizes []int, i int) bool {
	for d, c := range l.coords[i] {
		if uint(coords[d]+c) >= uint(sizes[d]) {
			return false
		}
	}
	return true
}

// SelectBackward returns the sub-table of neighbors visited before the
// center in a raster scan with processing dimension procDim (out-of-range
// values fall back to 0). Together with SelectForward it splits the table in
// two for forward/backward convergence sweeps.
func (l List) SelectBackward(procDim int) List {
	return l.selectHalf(procDim, true)
}

// SelectForward returns the sub-table of neighbors visited after the center
// in a raster scan with processing dimension procDim.
func (l List) SelectForward(procDim int) List {
	return l.selectHalf(procDim, false)
}

func (l List) selectHalf(procDim int, backward bool) List {
	if procDim < 0 || procDim >= l.dims {
		procDim = 0
	}
	out := List{dims: l.dims}
	for i, cc := range l.coords {
		if isBefore(cc, procDim) == backward {
			out.coords = append(out.coords, cc)
			out.dist = append(out.dist, l.dist[i])
		}
	}
	return out
}

// isBefore reports whether the relative position sorts before the center in
// raster order: the highest-ranked nonzero coordinate outside procDim
// decides; ties fall through to the processing dimension.
func isBefore(coords []int, procDim int) bool {
	for d := len(coords) - 1; d >= 0; d-- {
		if d == procDim {
			continue
		}
		if coords[d] > 0 {
			return false
		}
		if coords[d] < 0 {
			return true
		}
	}
	return coords[procDim] < 0
}
