package neighbors

import "errors"

// Connectivity sentinels accepted wherever a connectivity parameter appears.
const (
	// Full selects the maximal neighborhood: connectivity = dimensionality.
	Full = 0
	// AlternateLow alternates per iteration starting with the minimal kernel:
	// 1,2,1,2,... in 2-D and 1,3,1,3,... in 3-D.
	AlternateLow = -1
	// AlternateHigh alternates per iteration starting with the maximal kernel:
	// 2,1,2,1,... in 2-D and 3,1,3,1,... in 3-D (-3 is accepted as an alias in 3-D).
	AlternateHigh = -2
)

// Sentinel errors for neighborhood construction.
var (
	// ErrBadDimensionality indicates a dimensionality < 1 or a stride/coordinate
	// vector whose rank does not match the table.
	ErrBadDimensionality = errors.New("neighbors: invalid dimensionality")
	// ErrBadConnectivity indicates a connectivity exceeding the dimensionality,
	// or an alternation sentinel outside 2-D/3-D.
	ErrBadConnectivity = errors.New("neighbors: invalid connectivity")
)

// Resolve maps a connectivity parameter to the absolute connectivity used at
// the given iteration. Positive values pass through unchanged (range checking
// happens when the table is built); Full resolves to dims; the alternation
// sentinels follow the 2-D/3-D schedules documented on the constants and fail
// for any other dimensionality.
func Resolve(dims, connectivity, iteration int) (int, error) {
	if dims == 2 {
		switch connectivity {
		case AlternateLow:
			if iteration%2 == 0 {
				return 1, nil
			}
			return 2, nil
		case AlternateHigh:
			if iteration%2 == 0 {
				return 2, nil
			}
			return 1, nil
		}
	} else if dims == 3 {
		switch connectivity {
		case AlternateLow:
			if iteration%2 == 0 {
				return 1, nil
			}
			return 3, nil
		case AlternateHigh, -3:
			if iteration%2 == 0 {
				return 3, nil
			}
			return 1, nil
		}
	}
	if connectivity < 0 {
		return 0, ErrBadConnectivity
	}
	if connectivity == Full {
		return dims, nil
	}
	return connectivity, nil
}
