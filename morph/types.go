package morph

import (
	"errors"

	"github.com/katalvlaran/binmorph/binimg"
)

// EdgeCondition selects the assumed value of the (virtual) space outside the
// image. Pixels on the image border compare against it as if it were a
// regular neighbor.
type EdgeCondition string

const (
	// EdgeBackground treats everything outside the image as background.
	EdgeBackground EdgeCondition = "background"

	// EdgeObject treats everything outside the image as object.
	EdgeObject EdgeCondition = "object"

	// EdgeSpecial is accepted by Opening and Closing only. It runs the two
	// composed passes with complementary edge conditions so that objects
	// touching the image border are preserved rather than clipped or grown.
	EdgeSpecial EdgeCondition = "special"
)

// outsideIsObject maps the condition to the value of the virtual outside
// pixel. EdgeSpecial has no single value and is rejected; Opening and
// Closing resolve it before reaching here.
func (e EdgeCondition) outsideIsObject() (bool, error) {
	switch e {
	case EdgeObject:
		return true, nil
	case EdgeBackground:
		return false, nil
	}
	return false, ErrBadEdgeCondition
}

// EndPixelCondition controls what ConditionalThinning2D and
// ConditionalThickening2D do with the tips of single-pixel-wide structures.
type EndPixelCondition string

const (
	// EndPixelLose lets end pixels erode away, so isolated lines shrink to
	// their topological core.
	EndPixelLose EndPixelCondition = "lose"

	// EndPixelKeep protects end pixels, preserving line extremities.
	EndPixelKeep EndPixelCondition = "keep"
)

// CountMode selects which pixels CountNeighbors produces a count for.
type CountMode string

const (
	// CountAll counts neighbors for every pixel.
	CountAll CountMode = "all"

	// CountForeground counts neighbors for object pixels only; background
	// pixels yield zero.
	CountForeground CountMode = "foreground"
)

var (
	// ErrBadIterations means a negative iteration count was requested.
	ErrBadIterations = errors.New("morph: iterations must not be negative")

	// ErrBadEdgeCondition means the edge condition is not one of the
	// EdgeCondition constants accepted by the operation.
	ErrBadEdgeCondition = errors.New("morph: invalid edge condition")

	// ErrBadEndPixel means the end pixel condition is not EndPixelLose or
	// EndPixelKeep.
	ErrBadEndPixel = errors.New("morph: invalid end pixel condition")

	// ErrBadCountMode means the count mode is not CountAll or CountForeground.
	ErrBadCountMode = errors.New("morph: invalid count mode")

	// ErrNot2D is returned by the 2-D-only operations when the input has a
	// different dimensionality.
	ErrNot2D = errors.New("morph: operation requires a 2-D image")
)

// Status byte bit planes used while an operation runs. The data bit is the
// pixel value itself; the others are scratch and are stripped before any
// image is returned.
const (
	dataBit   = binimg.DataBit
	borderBit = uint8(1) << 2
	maskBit   = uint8(1) << 3
)
