// Package morph implements queue-driven binary morphology on N-dimensional
// images: dilation, erosion, opening and closing, seeded propagation
// (geodesic reconstruction), edge-object removal, specialized 2-D
// conditional thinning/thickening, neighbor counting and majority voting.
//
// All operators work by breadth-first propagation from the object/background
// interface: an initial queue of edge pixels is built once, then each
// iteration flips the queued frontier and enqueues the next one. Transient
// state (border, mask, enqueued markers) lives in the unused bits of each
// pixel's status byte and never escapes an operation; bounds checks run only
// for pixels carrying the border bit.
//
// Connectivity parameters follow the neighbors package: positive values up
// to the dimensionality, neighbors.Full, or the 2-D/3-D alternation
// sentinels. Edge conditions choose the assumed value of the space outside
// the image; opening and closing additionally accept EdgeSpecial, which
// pairs the complementary conditions to avoid artifacts at the image border.
//
// Quick start:
//
//	img, _ := binimg.New(64, 41)
//	_ = img.Set(true, 32, 20)
//	grown, err := morph.Dilation(img, morph.WithConnectivity(2), morph.WithIterations(7))
//	if err != nil { ... }
//	// grown.Count() == 225: a 15x15 square
//
// Every operation copies its input into a fresh output before mutating, so
// inputs are never written to and may be shared between concurrent calls.
package morph
