package hitmiss

import (
	"math"

	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/neighbors"
)

// x marks don't-care positions in the interval literals below.
var x = math.NaN()

// HomotopicThinningIntervals2D returns the interval family whose thinning
// to convergence computes a homotopic skeleton: connected components stay
// connected and holes stay open. connectivity 1 preserves 4-connected
// topology (8 intervals), connectivity 2 preserves 8-connected topology
// (12 intervals).
func HomotopicThinningIntervals2D(connectivity int) ([]Interval, error) {
	base, err := New([]float64{
		0, 0, 0,
		x, 1, x,
		1, 1, 1,
	}, 3, 3)
	if err != nil {
		return nil, err
	}
	switch connectivity {
	case 1:
		return base.GenerateRotatedVersions(45, InterleavedClockwise)
	case 2:
		out, err := base.GenerateRotatedVersions(90, InterleavedClockwise)
		if err != nil {
			return nil, err
		}
		corner, err := New([]float64{
			x, 0, 0,
			1, 1, 0,
			x, 1, x,
		}, 3, 3)
		if err != nil {
			return nil, err
		}
		more, err := corner.GenerateRotatedVersions(90, InterleavedClockwise)
		if err != nil {
			return nil, err
		}
		out = append(out, more...)
		tee, err := New([]float64{
			0, 0, 0,
			1, 1, 1,
			x, 1, x,
		}, 3, 3)
		if err != nil {
			return nil, err
		}
		more, err = tee.GenerateRotatedVersions(90, InterleavedClockwise)
		if err != nil {
			return nil, err
		}
		return append(out, more...), nil
	}
	return nil, neighbors.ErrBadConnectivity
}

// HomotopicThickeningIntervals2D returns the inverted homotopic thinning
// family: thickening with it grows the background's skeleton, such as the
// skiz of a set of markers.
func HomotopicThickeningIntervals2D(connectivity int) ([]Interval, error) {
	out, err := HomotopicThinningIntervals2D(connectivity)
	if err != nil {
		return nil, err
	}
	Invert(out)
	return out, nil
}

// EndPixelIntervals2D returns the detectors for end pixels of skeletons:
// foreground pixels with at most one neighbor under the given connectivity.
// Thinning with them trims line ends; a union locates them.
func EndPixelIntervals2D(connectivity int) ([]Interval, error) {
	switch connectivity {
	case 1:
		base, err := New([]float64{
			x, 0, x,
			0, 1, 0,
			x, x, x,
		}, 3, 3)
		if err != nil {
			return nil, err
		}
		return base.GenerateRotatedVersions(90, InterleavedClockwise)
	case 2:
		base, err := New([]float64{
			0, 0, 0,
			0, 1, 0,
			0, x, x,
		}, 3, 3)
		if err != nil {
			return nil, err
		}
		return base.GenerateRotatedVersions(45, InterleavedClockwise)
	}
	return nil, neighbors.ErrBadConnectivity
}

// HomotopicEndPixelIntervals2D returns the end pixel detectors restricted
// to pixels whose removal keeps the skeleton connected: the pixel must have
// exactly one neighbor, on the far side.
func HomotopicEndPixelIntervals2D(connectivity int) ([]Interval, error) {
	switch connectivity {
	case 1:
		base, err := New([]float64{
			x, 0, x,
			0, 1, 0,
			x, 1, x,
		}, 3, 3)
		if err != nil {
			return nil, err
		}
		return base.GenerateRotatedVersions(90, InterleavedClockwise)
	case 2:
		base, err := New([]float64{
			0, 0, 0,
			0, 1, 0,
			x, 1, x,
		}, 3, 3)
		if err != nil {
			return nil, err
		}
		return base.GenerateRotatedVersions(45, InterleavedClockwise)
	}
	return nil, neighbors.ErrBadConnectivity
}

// HomotopicInverseEndPixelIntervals2D returns the inverted homotopic end
// pixel family, for trimming the background skeleton's line ends under
// thickening.
func HomotopicInverseEndPixelIntervals2D(connectivity int) ([]Interval, error) {
	out, err := HomotopicEndPixelIntervals2D(connectivity)
	if err != nil {
		return nil, err
	}
	Invert(out)
	return out, nil
}

// SinglePixelInterval returns the isolated pixel detector for the given
// dimensionality: a hit surrounded by misses in its full cubic
// neighborhood.
func SinglePixelInterval(dims int) (Interval, error) {
	if dims < 1 {
		return Interval{}, binimg.ErrBadDimensions
	}
	n := 1
	sizes := make([]int, dims)
	for d := range sizes {
		sizes[d] = 3
		n *= 3
	}
	values := make([]float64, n)
	values[n/2] = 1
	return New(values, sizes...)
}

// BranchPixelIntervals2D returns the detectors for skeleton branch points:
// pixels with three or more emanating arcs. The union over the family
// marks them.
func BranchPixelIntervals2D() ([]Interval, error) {
	fork, err := New([]float64{
		1, x, x,
		x, 1, 1,
		1, x, x,
	}, 3, 3)
	if err != nil {
		return nil, err
	}
	out, err := fork.GenerateRotatedVersions(45, InterleavedClockwise)
	if err != nil {
		return nil, err
	}
	cross, err := New([]float64{
		1, x, x,
		x, 1, x,
		1, x, 1,
	}, 3, 3)
	if err != nil {
		return nil, err
	}
	more, err := cross.GenerateRotatedVersions(45, InterleavedClockwise)
	if err != nil {
		return nil, err
	}
	return append(out, more...), nil
}

// BoundaryPixelInterval2D returns the detector for object pixels with a
// background pixel to their right. Its rotation family locates the whole
// object boundary.
func BoundaryPixelInterval2D() (Interval, error) {
	return New([]float64{
		x, x, x,
		x, 1, 0,
		x, x, x,
	}, 3, 3)
}

// ConvexHullIntervals2D returns the thickening family that fills every
// concavity deeper than a 45-degree cut, converging to the smallest
// octagonally convex superset.
func ConvexHullIntervals2D() ([]Interval, error) {
	wedge, err := New([]float64{
		1, 1, x,
		1, 0, x,
		1, x, x,
	}, 3, 3)
	if err != nil {
		return nil, err
	}
	return wedge.GenerateRotatedVersions(45, InterleavedClockwise)
}
