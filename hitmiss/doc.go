// Package hitmiss implements interval-based binary morphology: hit-or-miss
// template matching (sup- and inf-generating operators) and conditional
// thinning/thickening driven by interval families, plus a catalogue of the
// classical 3x3 families (homotopic skeletons, end/branch/boundary pixel
// detectors, convex hull).
//
// An Interval is a small template over {hit, miss, don't care}: the
// sup-generating operator marks pixels where every hit lands on foreground
// and every miss on background, the inf-generating operator marks pixels
// where at least one does. Unions and intersections over an interval array
// apply a whole family in one pass. Thinning removes matched foreground
// pixels and thickening adds matched background pixels, cycling through the
// family until convergence or a fixed iteration count, optionally under a
// mask.
//
// 2-D interval families are built from a base template by rotation in 45- or
// 90-degree steps. The 90-degree rotations are views that share the base's
// storage; Invert accounts for the sharing and flips each backing array
// exactly once.
//
// Quick start:
//
//	ivs, _ := hitmiss.HomotopicThinningIntervals2D(2)
//	skel, err := hitmiss.Thinning(img, nil, ivs)
//	if err != nil { ... }
//	// skel is the 8-connected homotopic skeleton of img
//
// By default operations extend the input with background pixels; pass
// WithBoundary(AlreadyExpanded) when the input already carries a margin, in
// which case the output shrinks by the interval radius on every side.
package hitmiss
