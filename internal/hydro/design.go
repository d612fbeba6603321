package hydro

import (
	"fmt"
	"sort"
)

// DesignDischarge ties an exceedance probability in (0,1) to the discharge a
// structure must pass at that probability.
type DesignDischarge struct {
	Probability float64 `json:"probability"`
	Discharge   float64 `json:"discharge"`
}

// DesignResult is a resolved design point. Lower and Upper are the bracketing
// curve samples the level was interpolated between, kept for traceability.
type DesignResult struct {
	Probability float64     `json:"probability"`
	Discharge   float64     `json:"discharge"`
	Level       float64     `json:"level"`
	Velocity    float64     `json:"velocity"`
	Lower       LevelSample `json:"lower"`
	Upper       LevelSample `json:"upper"`
}

// Resolve inverse-interpolates the rating curve for every design discharge
// and returns the results ordered by ascending exceedance probability. A
// target outside the curve's discharge range is an error, not a clamp: it
// means bad input data or insufficient sweep coverage.
func Resolve(c *Curve, targets []DesignDischarge) ([]DesignResult, error) {
	out := make([]DesignResult, 0, len(targets))
	for _, t := range targets {
		r, err := resolveOne(c, t)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Probability < out[j].Probability })
	return out, nil
}

func resolveOne(c *Curve, t DesignDischarge) (DesignResult, error) {
	if t.Probability <= 0 || t.Probability >= 1 {
		return DesignResult{}, fmt.Errorf("%w: exceedance probability %g outside (0,1)",
			ErrInvalidParameter, t.Probability)
	}
	s := c.samples
	n := len(s)
	if t.Discharge < s[0].Discharge || t.Discharge > s[n-1].Discharge {
		return DesignResult{}, fmt.Errorf("%w: design discharge %g (P=%g) outside [%g, %g]",
			ErrOutOfRange, t.Discharge, t.Probability, s[0].Discharge, s[n-1].Discharge)
	}

	// The curve is non-decreasing in Q, so at least one consecutive pair
	// brackets the target. On equal-Q plateaus the narrowest level span wins
	// to keep the interpolation determinate.
	best := -1
	for i := 0; i < n-1; i++ {
		if s[i].Discharge <= t.Discharge && t.Discharge <= s[i+1].Discharge {
			if best < 0 || s[i+1].Level-s[i].Level < s[best+1].Level-s[best].Level {
				best = i
			}
		}
	}
	a, b := s[best], s[best+1]

	var level float64
	switch {
	case t.Discharge == a.Discharge:
		level = a.Level
	case t.Discharge == b.Discharge:
		level = b.Level
	default:
		level = a.Level + (t.Discharge-a.Discharge)/(b.Discharge-a.Discharge)*(b.Level-a.Level)
	}

	// Velocity comes from the curve's velocity interpolant at the resolved
	// level; discharge, not velocity, is the conserved driving quantity.
	v, err := c.Velocity(level)
	if err != nil {
		return DesignResult{}, err
	}
	return DesignResult{
		Probability: t.Probability,
		Discharge:   t.Discharge,
		Level:       level,
		Velocity:    v,
		Lower:       a,
		Upper:       b,
	}, nil
}
