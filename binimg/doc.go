// Package binimg provides the N-dimensional binary image container used by
// every morphological operator in binmorph.
//
// What this package provides:
//
//   - Image: an N-D boolean image backed by one status byte per pixel.
//     Bit 0 carries the logical sample; the remaining bits are scratch
//     space for the propagation engines and never escape an operation.
//   - Bit-plane primitives (SetBits, ResetBits, TestBits, TestAnyBit) and
//     whole-image scratch-bit clearing.
//   - Border marking: MarkBorder / ClearBorder flag the outer one-pixel
//     shell so engines can skip bounds checks on interior pixels.
//   - Pixelwise combinators (Not, And, Or, Xor), boundary extension
//     (Extend), and a ByteImage counterpart for per-pixel counts.
//
// Images use normal strides: dimension 0 varies fastest (stride 1), so a
// pixel's linear buffer index equals its offset. All constructors allocate
// dense buffers; shapes are fixed after construction.
//
// Quick start:
//
//	img, err := binimg.New(64, 41)
//	if err != nil { ... }
//	_ = img.Set(true, 32, 20)
//	on, _ := img.At(32, 20) // true
package binimg
