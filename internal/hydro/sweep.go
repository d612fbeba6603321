package hydro

import "fmt"

// SegmentSample is one segment's hydraulic state at a water level.
type SegmentSample struct {
	Name            string  `json:"name"`
	Area            float64 `json:"area"`
	WettedPerimeter float64 `json:"wetted_perimeter"`
	HydraulicRadius float64 `json:"hydraulic_radius"`
	Discharge       float64 `json:"discharge"`
	Velocity        float64 `json:"velocity"`
}

// LevelSample is the whole section's state at one water level.
type LevelSample struct {
	Level     float64         `json:"level"`
	Segments  []SegmentSample `json:"segments"`
	Area      float64         `json:"area"`
	Discharge float64         `json:"discharge"`
	Velocity  float64         `json:"velocity"`
}

// Sweep steps the water level from the channel invert up to and including the
// first level at or above the profile crest, evaluating every segment at each
// step. The invert sample always has zero area and discharge.
func Sweep(p *Profile, segs []Segment, step float64) ([]LevelSample, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %g", ErrInvalidStep, step)
	}
	if err := ValidateSegments(p, segs); err != nil {
		return nil, err
	}
	invert := p.Invert()
	crest := p.Crest()
	var samples []LevelSample
	for i := 0; ; i++ {
		level := invert + float64(i)*step
		sample, err := sampleAt(p, segs, level)
		if err != nil {
			return nil, fmt.Errorf("level %g: %w", level, err)
		}
		samples = append(samples, sample)
		if level >= crest {
			return samples, nil
		}
	}
}

// sampleAt evaluates all segments at one level, in segment order.
func sampleAt(p *Profile, segs []Segment, level float64) (LevelSample, error) {
	out := LevelSample{Level: level, Segments: make([]SegmentSample, 0, len(segs))}
	for _, seg := range segs {
		area, perim, err := Reduce(p, seg, level)
		if err != nil {
			return LevelSample{}, err
		}
		q, err := SegmentDischarge(area, perim, seg.Roughness, seg.Slope)
		if err != nil {
			return LevelSample{}, fmt.Errorf("segment %q: %w", seg.Name, err)
		}
		ss := SegmentSample{Name: seg.Name, Area: area, WettedPerimeter: perim, Discharge: q}
		if perim > 0 {
			ss.HydraulicRadius = area / perim
		}
		if area > 0 {
			ss.Velocity = q / area
		}
		out.Segments = append(out.Segments, ss)
		out.Area += area
		out.Discharge += q
	}
	if out.Area > 0 {
		out.Velocity = out.Discharge / out.Area
	}
	return out, nil
}
