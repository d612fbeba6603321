package hydro

import (
	"fmt"
	"math"
)

// SegmentDischarge applies the Manning equation to one segment's submerged
// geometry:
//
//	Q = (1/n) · A · R^(2/3) · sqrt(i), R = A/P
//
// A dry segment (zero wetted perimeter) carries no flow regardless of its
// parameters.
func SegmentDischarge(area, perimeter, roughness, slope float64) (float64, error) {
	if perimeter == 0 {
		return 0, nil
	}
	if roughness <= 0 {
		return 0, fmt.Errorf("%w: roughness %g on a wet segment", ErrInvalidParameter, roughness)
	}
	if slope <= 0 {
		return 0, fmt.Errorf("%w: slope %g on a wet segment", ErrInvalidParameter, slope)
	}
	r := area / perimeter
	return area * math.Pow(r, 2.0/3.0) * math.Sqrt(slope) / roughness, nil
}
