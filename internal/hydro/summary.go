package hydro

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// SectionInput bundles everything needed to compute one cross-section.
// DesignIndex selects the governing entry of Design (the design high-water
// level) used for the per-segment summary table.
type SectionInput struct {
	Title       string            `json:"title,omitempty"`
	Date        string            `json:"date,omitempty"`
	Waterline   float64           `json:"waterline,omitempty"`
	Points      []Point           `json:"points"`
	Segments    []Segment         `json:"segments"`
	Step        float64           `json:"step"`
	Design      []DesignDischarge `json:"design,omitempty"`
	DesignIndex int               `json:"design_index,omitempty"`
}

// Variation describes the spread of per-segment velocities at one level.
// A high coefficient of variation flags strongly non-uniform flow
// distribution across the section.
type Variation struct {
	Level  float64 `json:"level"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	CV     float64 `json:"cv"`
}

// SegmentSummary is one segment's hydraulic state interpolated at the design
// water level.
type SegmentSummary struct {
	Name      string  `json:"name"`
	Roughness float64 `json:"roughness"`
	Slope     float64 `json:"slope"`
	Area      float64 `json:"area"`
	Discharge float64 `json:"discharge"`
	Velocity  float64 `json:"velocity"`
}

// SectionResult is the report-ready outcome for one cross-section.
type SectionResult struct {
	Title       string           `json:"title,omitempty"`
	Date        string           `json:"date,omitempty"`
	Waterline   float64          `json:"waterline,omitempty"`
	Samples     []LevelSample    `json:"samples"`
	Design      []DesignResult   `json:"design,omitempty"`
	Variation   []Variation      `json:"variation"`
	DesignLevel float64          `json:"design_level,omitempty"`
	Segments    []SegmentSummary `json:"segments,omitempty"`

	curve *Curve
}

// Curve returns the built rating curve, or nil for results decoded from JSON.
func (r *SectionResult) Curve() *Curve { return r.curve }

// Compute runs the whole pipeline for one cross-section: validate geometry,
// sweep levels, build the rating curve, resolve design points, derive the
// velocity-variation series and the per-segment design-level summary.
func Compute(in SectionInput) (*SectionResult, error) {
	p, err := NewProfile(in.Points)
	if err != nil {
		return nil, err
	}
	p.Title, p.Date, p.Waterline = in.Title, in.Date, in.Waterline

	samples, err := Sweep(p, in.Segments, in.Step)
	if err != nil {
		return nil, err
	}
	curve, err := BuildCurve(samples)
	if err != nil {
		return nil, err
	}

	res := &SectionResult{
		Title:     in.Title,
		Date:      in.Date,
		Waterline: in.Waterline,
		Samples:   samples,
		Variation: VelocityVariation(samples),
		curve:     curve,
	}
	if len(in.Design) == 0 {
		return res, nil
	}

	res.Design, err = Resolve(curve, in.Design)
	if err != nil {
		return nil, err
	}
	idx := in.DesignIndex
	if idx < 0 || idx >= len(in.Design) {
		return nil, fmt.Errorf("%w: design index %d with %d design discharges",
			ErrInvalidParameter, idx, len(in.Design))
	}
	governing := in.Design[idx].Probability
	for _, d := range res.Design {
		if d.Probability == governing {
			res.DesignLevel = d.Level
			res.Segments = segmentSummaries(in.Segments, samples, d.Level)
			break
		}
	}
	return res, nil
}

// VelocityVariation computes, per level, the coefficient of variation of the
// wet segments' velocities. Fewer than two wet segments means no spread.
func VelocityVariation(samples []LevelSample) []Variation {
	out := make([]Variation, 0, len(samples))
	for _, s := range samples {
		var vs []float64
		for _, seg := range s.Segments {
			if seg.WettedPerimeter > 0 {
				vs = append(vs, seg.Velocity)
			}
		}
		v := Variation{Level: s.Level}
		if len(vs) >= 2 {
			v.Mean = stat.Mean(vs, nil)
			v.StdDev = stat.StdDev(vs, nil)
			if v.Mean > 0 {
				v.CV = v.StdDev / v.Mean
			}
		} else if len(vs) == 1 {
			v.Mean = vs[0]
		}
		out = append(out, v)
	}
	return out
}

// segmentSummaries interpolates every segment's area, discharge and velocity
// at the design level from its own per-level series.
func segmentSummaries(segs []Segment, samples []LevelSample, level float64) []SegmentSummary {
	n := len(samples)
	i := n - 1
	for j := 1; j < n; j++ {
		if samples[j].Level >= level {
			i = j
			break
		}
	}
	a, b := samples[i-1], samples[i]
	t := 0.0
	if b.Level > a.Level {
		t = (level - a.Level) / (b.Level - a.Level)
	}

	out := make([]SegmentSummary, 0, len(segs))
	for j, seg := range segs {
		sa, sb := a.Segments[j], b.Segments[j]
		out = append(out, SegmentSummary{
			Name:      seg.Name,
			Roughness: seg.Roughness,
			Slope:     seg.Slope,
			Area:      sa.Area + t*(sb.Area-sa.Area),
			Discharge: sa.Discharge + t*(sb.Discharge-sa.Discharge),
			Velocity:  sa.Velocity + t*(sb.Velocity-sa.Velocity),
		})
	}
	return out
}

// Summary consolidates computed cross-sections for the report layer.
type Summary struct {
	Sections []*SectionResult `json:"sections"`
	MaxCV    float64          `json:"max_cv"`
}

// Aggregate shapes computed sections into the structure the report consumes
// and tracks the worst velocity non-uniformity seen across the batch. It
// derives nothing new beyond that.
func Aggregate(sections []*SectionResult) Summary {
	sum := Summary{Sections: sections}
	for _, s := range sections {
		for _, v := range s.Variation {
			if v.CV > sum.MaxCV {
				sum.MaxCV = v.CV
			}
		}
	}
	return sum
}
