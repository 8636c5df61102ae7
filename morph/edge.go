package morph

import (
	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/neighbors"
)

// findEdgePixels seeds q with the offsets of every edge pixel of the given
// polarity: a pixel whose data bit equals findObject and that has at least
// one neighbor of the opposite value. The virtual pixels outside the image
// participate with the value outsideIsObject, so a border pixel differing
// from the outside is an edge pixel without looking at any neighbor.
//
// img must already carry border bits; only pixels marked with borderBit pay
// for coordinate reconstruction and per-neighbor bounds checks.
func findEdgePixels(img *binimg.Image, findObject bool, list neighbors.List, offsets []int, outsideIsObject bool, q *pixelQueue) {
	px := img.Pixels()
	sizes := img.Sizes()
	coords := make([]int, img.Dimensionality())

	for off, b := range px {
		isObject := b&dataBit != 0
		if isObject != findObject {
			continue
		}
		isBorder := b&borderBit != 0
		if isBorder && isObject != outsideIsObject {
			q.push(off)
			continue
		}
		if isBorder {
			img.CoordsInto(off, coords)
		}
		for i, noff := range offsets {
			if isBorder && !list.IsInside(coords, sizes, i) {
				continue
			}
			if (px[off+noff]&dataBit != 0) != isObject {
				q.push(off)
				break
			}
		}
	}
}
