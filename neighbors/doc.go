// Package neighbors enumerates pixel neighborhoods in a
// dimensionality-independent way.
//
// A connectivity value selects which of the up-to 3^d - 1 surrounding
// positions count as adjacent: 1 keeps face neighbors only (city-block), d
// keeps everything (chessboard), values in between keep positions whose
// nonzero-coordinate count does not exceed the connectivity. The sentinels
// Full, AlternateLow and AlternateHigh extend the scheme: Full resolves to
// the dimensionality, the alternation sentinels switch between the minimal
// and maximal kernel on every iteration (2-D and 3-D only) to reduce the
// directional bias of iterated operators.
//
// List is the resulting ordered table: relative coordinates, metric lengths
// (pixel-size-scaled Euclidean distances), stride-resolved linear offsets,
// the per-dimension reach (Border), an in-image predicate for border pixels,
// and backward/forward half-neighborhood selection for raster sweeps.
package neighbors
