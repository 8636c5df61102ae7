package morph

import (
	"fmt"

	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/neighbors"
)

// EdgeObjectsRemove removes all objects that touch the image border. It
// reconstructs the border-connected objects by propagating an empty seed
// through the input with EdgeObject, then XORs the reconstruction out of
// the input.
//
// Default connectivity is 1. Alternating (negative) connectivities are not
// meaningful here since the propagation runs until stability; they are
// rejected.
func EdgeObjectsRemove(in *binimg.Image, opts ...Option) (*binimg.Image, error) {
	o := buildOptions(edgeObjectsDefaults(), opts)
	if o.Connectivity < 0 {
		return nil, fmt.Errorf("EdgeObjectsRemove: %w", neighbors.ErrBadConnectivity)
	}
	edgeObjects, err := Propagation(nil, in,
		WithConnectivity(o.Connectivity), WithIterations(0), WithEdge(EdgeObject))
	if err != nil {
		return nil, fmt.Errorf("EdgeObjectsRemove: %w", err)
	}
	out, err := binimg.Xor(in, edgeObjects)
	if err != nil {
		return nil, fmt.Errorf("EdgeObjectsRemove: %w", err)
	}
	return out, nil
}
