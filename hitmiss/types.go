package hitmiss

import "errors"

// RotationOrder controls the ordering of the interval family produced by
// GenerateRotatedVersions.
type RotationOrder string

const (
	// Clockwise orders the family by increasing clockwise angle.
	Clockwise RotationOrder = "clockwise"

	// CounterClockwise orders the family by increasing counter-clockwise
	// angle.
	CounterClockwise RotationOrder = "counter-clockwise"

	// InterleavedClockwise orders the family clockwise but places each
	// rotation next to its 180-degree opposite, the access pattern a
	// union or intersection over the family usually wants.
	InterleavedClockwise RotationOrder = "interleaved clockwise"

	// InterleavedCounterClockwise is the counter-clockwise interleaved
	// ordering.
	InterleavedCounterClockwise RotationOrder = "interleaved counter-clockwise"
)

// BoundaryMode selects how the operators handle pixels beyond the image.
type BoundaryMode string

// AlreadyExpanded declares that the input image carries its own padding:
// the caller has extended it by at least the kernel radius on every side,
// and the output shrinks by that padding. The zero value ("") pads the
// input with background instead.
const AlreadyExpanded BoundaryMode = "already-expanded"

var (
	// ErrEvenIntervalSize means an interval extent is even; intervals
	// need a well-defined center pixel.
	ErrEvenIntervalSize = errors.New("hitmiss: interval sizes must be odd")

	// ErrNoHits means the interval has no foreground (hit) pixel.
	ErrNoHits = errors.New("hitmiss: interval needs at least one hit pixel")

	// ErrOverlappingHitMiss means the hit and miss images share a set pixel.
	ErrOverlappingHitMiss = errors.New("hitmiss: hit and miss images are not disjoint")

	// ErrNot2D is returned by the rotation operations for intervals of any
	// other dimensionality.
	ErrNot2D = errors.New("hitmiss: operation requires a 2-D interval")

	// ErrBadAngle means the rotation angle is not 45, 90 or 180.
	ErrBadAngle = errors.New("hitmiss: rotation angle must be 45, 90 or 180")

	// ErrBadRotationOrder means the order is not one of the RotationOrder
	// constants.
	ErrBadRotationOrder = errors.New("hitmiss: invalid rotation order")

	// ErrBadBoundary means the boundary mode is unknown, or an
	// already-expanded input is too small for the declared padding.
	ErrBadBoundary = errors.New("hitmiss: invalid boundary mode")

	// ErrEmptyIntervalArray is returned by UnionSupGenerating and
	// IntersectionInfGenerating, which need at least one interval.
	ErrEmptyIntervalArray = errors.New("hitmiss: interval array must not be empty")

	// ErrBadIterations means a negative iteration count was requested.
	ErrBadIterations = errors.New("hitmiss: iterations must not be negative")
)
