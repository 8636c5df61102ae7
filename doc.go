// Package binmorph is an in-memory engine for binary image morphology —
// from a single dilation step to homotopic skeletons, on boolean images of
// any dimensionality.
//
// 🚀 What is binmorph?
//
//	A queue-driven, allocation-conscious library that brings together:
//		• Boolean images: N-D containers with one status byte per pixel
//		• Connectivity: neighbor offset tables with metric lengths
//		• Basic operators: dilation, erosion, opening, closing
//		• Seeded propagation: geodesic reconstruction, edge-object removal
//		• Skeletons: conditional 2-D thinning & thickening
//		• Hit-or-miss: intervals, rotated families, sup/inf-generating operators
//		• Counting: per-pixel neighbor counts & majority vote
//
// ✨ Why choose binmorph?
//
//   - Frontier-driven – operators walk the object/background interface, not
//     every pixel on every pass
//   - Predictable – explicit errors, no panics on caller input, results
//     independent of processing order
//   - Pure Go – one flat byte plane per image, no cgo
//   - Concurrent-friendly – the stateless passes parallelize per scanline
//
// Under the hood, everything is organized under five subpackages:
//
//	binimg/    — N-D boolean image, status bits, border marking, extension
//	neighbors/ — connectivity resolution & neighbor offset tables
//	scan/      — scanline plans & the optional worker pool
//	morph/     — the propagation engine: dilate/erode/open/close, seeded
//	             propagation, edge-object removal, 2-D thinning, counting
//	hitmiss/   — intervals & rotation families, sup/inf-generating
//	             operators, N-D thinning/thickening, the interval catalogue
//
// Quick ASCII example:
//
//	███        ·█·
//	█·█   ──►  █·█      homotopic thinning, 8-connected topology
//	███        ·█·
//
//	a filled ring thins to its diamond skeleton; the hole stays open.
//
//	go get github.com/katalvlaran/binmorph
package binmorph
