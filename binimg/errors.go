package binimg

import "errors"

// Sentinel errors for binimg operations.
var (
	// ErrNotForged indicates an image without an allocated pixel buffer (nil or zero value).
	ErrNotForged = errors.New("binimg: image not forged")
	// ErrBadDimensions indicates an empty size vector, a non-positive extent,
	// or a coordinate/size vector of the wrong rank.
	ErrBadDimensions = errors.New("binimg: invalid dimensions")
	// ErrSizeMismatch indicates two images whose size vectors differ.
	ErrSizeMismatch = errors.New("binimg: image sizes do not match")
	// ErrOutOfRange indicates a coordinate outside the image domain.
	ErrOutOfRange = errors.New("binimg: coordinates out of range")
	// ErrBadBorder indicates a negative or wrong-rank border specification.
	ErrBadBorder = errors.New("binimg: invalid border specification")
)
