package hydro

import (
	"fmt"
	"math"
)

// Point is one surveyed profile vertex: distance along the section line and
// bed elevation, both in meters.
type Point struct {
	Station   float64 `json:"station"`
	Elevation float64 `json:"elevation"`
}

// Profile is a surveyed cross-section polyline. Stations never decrease;
// coincident stations describe a vertical bank.
type Profile struct {
	Title     string  `json:"title,omitempty"`
	Date      string  `json:"date,omitempty"`
	Waterline float64 `json:"waterline,omitempty"`
	Points    []Point `json:"points"`
}

// NewProfile validates the station order and returns the profile.
func NewProfile(points []Point) (*Profile, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: profile needs at least 2 points, got %d", ErrInvalidGeometry, len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Station < points[i-1].Station {
			return nil, fmt.Errorf("%w: station decreases from %g to %g at point %d",
				ErrInvalidGeometry, points[i-1].Station, points[i].Station, i)
		}
	}
	if points[len(points)-1].Station == points[0].Station {
		return nil, fmt.Errorf("%w: profile has zero width", ErrInvalidGeometry)
	}
	return &Profile{Points: points}, nil
}

// Invert returns the lowest bed elevation of the profile.
func (p *Profile) Invert() float64 {
	min := p.Points[0].Elevation
	for _, pt := range p.Points[1:] {
		if pt.Elevation < min {
			min = pt.Elevation
		}
	}
	return min
}

// Crest returns the highest elevation of the profile.
func (p *Profile) Crest() float64 {
	max := p.Points[0].Elevation
	for _, pt := range p.Points[1:] {
		if pt.Elevation > max {
			max = pt.Elevation
		}
	}
	return max
}

// Segment is a contiguous part of the profile width with uniform roughness
// and longitudinal bed slope. Start and End are stations; the range is
// [Start, End), except the last segment, which is closed at the profile end.
type Segment struct {
	Name      string  `json:"name"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Roughness float64 `json:"roughness"` // metric Manning n
	Slope     float64 `json:"slope"`     // dimensionless fraction
}

// stationTol absorbs float noise when comparing stations read from survey files.
const stationTol = 1e-9

// ValidateSegments checks that the segments exactly cover the profile's
// station range, in order, with no gaps or overlaps.
func ValidateSegments(p *Profile, segs []Segment) error {
	if len(segs) == 0 {
		return fmt.Errorf("%w: no segments", ErrInvalidGeometry)
	}
	first := p.Points[0].Station
	last := p.Points[len(p.Points)-1].Station
	if math.Abs(segs[0].Start-first) > stationTol {
		return fmt.Errorf("%w: first segment starts at %g, profile starts at %g",
			ErrInvalidGeometry, segs[0].Start, first)
	}
	if math.Abs(segs[len(segs)-1].End-last) > stationTol {
		return fmt.Errorf("%w: last segment ends at %g, profile ends at %g",
			ErrInvalidGeometry, segs[len(segs)-1].End, last)
	}
	for i, seg := range segs {
		if seg.End <= seg.Start {
			return fmt.Errorf("%w: segment %q has non-positive width [%g, %g)",
				ErrInvalidGeometry, seg.Name, seg.Start, seg.End)
		}
		if i == 0 {
			continue
		}
		gap := seg.Start - segs[i-1].End
		switch {
		case gap > stationTol:
			return fmt.Errorf("%w: gap between segments %q and %q (%g to %g)",
				ErrInvalidGeometry, segs[i-1].Name, seg.Name, segs[i-1].End, seg.Start)
		case gap < -stationTol:
			return fmt.Errorf("%w: segments %q and %q overlap (%g to %g)",
				ErrInvalidGeometry, segs[i-1].Name, seg.Name, seg.Start, segs[i-1].End)
		}
	}
	return nil
}

// Reduce clips the profile to one segment's station range and the water
// level, returning the submerged area and wetted perimeter. A level at or
// below the segment's bed yields zeros.
func Reduce(p *Profile, seg Segment, level float64) (area, perimeter float64, err error) {
	pts := p.Points
	last := pts[len(pts)-1].Station
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		if b.Station < a.Station {
			return 0, 0, fmt.Errorf("%w: station decreases from %g to %g",
				ErrInvalidGeometry, a.Station, b.Station)
		}
		if a.Station == b.Station {
			// Vertical bank. It belongs to the segment whose range starts
			// here; the profile's rightmost bank closes the last segment.
			s := a.Station
			if s < seg.Start || s > seg.End || (s == seg.End && seg.End < last) {
				continue
			}
			lo, hi := a.Elevation, b.Elevation
			if hi < lo {
				lo, hi = hi, lo
			}
			if wet := math.Min(level, hi) - lo; wet > 0 {
				perimeter += wet
			}
			continue
		}
		x1 := math.Max(a.Station, seg.Start)
		x2 := math.Min(b.Station, seg.End)
		if x2 <= x1 {
			continue
		}
		da, dp := submergedPair(x1, elevationAt(a, b, x1), x2, elevationAt(a, b, x2), level)
		area += da
		perimeter += dp
	}
	return area, perimeter, nil
}

// elevationAt linearly interpolates the bed elevation at station x between
// two vertices with distinct stations.
func elevationAt(a, b Point, x float64) float64 {
	t := (x - a.Station) / (b.Station - a.Station)
	return a.Elevation + t*(b.Elevation-a.Elevation)
}

// submergedPair computes the submerged trapezoid area and bed length for one
// clipped vertex pair. Where the bed crosses the waterline the pair is
// clipped at the crossing station.
func submergedPair(x1, z1, x2, z2, level float64) (area, perim float64) {
	if z1 >= level && z2 >= level {
		return 0, 0
	}
	if z1 > level {
		x1, z1 = crossing(x1, z1, x2, z2, level), level
	} else if z2 > level {
		x2, z2 = crossing(x1, z1, x2, z2, level), level
	}
	if x2 <= x1 {
		return 0, 0
	}
	d1 := level - z1
	d2 := level - z2
	return (d1 + d2) / 2 * (x2 - x1), math.Hypot(x2-x1, z2-z1)
}

// crossing returns the station at which the bed line crosses the water level.
func crossing(x1, z1, x2, z2, level float64) float64 {
	return x1 + (level-z1)*(x2-x1)/(z2-z1)
}
