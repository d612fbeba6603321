package hydro

import (
	"fmt"
	"sort"
)

// Curve is a rating curve: level samples strictly increasing in level with
// non-decreasing discharge and area. Immutable once built.
type Curve struct {
	samples []LevelSample
}

// BuildCurve validates the sample sequence and wraps it into a Curve. A
// discharge or area decrease means the input geometry was malformed and is
// rejected, since every interpolation below assumes monotonicity.
func BuildCurve(samples []LevelSample) (*Curve, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrNonMonotonicCurve, len(samples))
	}
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if cur.Level <= prev.Level {
			return nil, fmt.Errorf("%w: level %g not above %g", ErrNonMonotonicCurve, cur.Level, prev.Level)
		}
		if cur.Discharge < prev.Discharge {
			return nil, fmt.Errorf("%w: discharge drops from %g to %g at level %g",
				ErrNonMonotonicCurve, prev.Discharge, cur.Discharge, cur.Level)
		}
		if cur.Area < prev.Area {
			return nil, fmt.Errorf("%w: area drops from %g to %g at level %g",
				ErrNonMonotonicCurve, prev.Area, cur.Area, cur.Level)
		}
	}
	return &Curve{samples: samples}, nil
}

// Samples returns the underlying level samples, level-ascending.
func (c *Curve) Samples() []LevelSample { return c.samples }

// MinLevel returns the lowest computed level (the channel invert).
func (c *Curve) MinLevel() float64 { return c.samples[0].Level }

// MaxLevel returns the highest computed level.
func (c *Curve) MaxLevel() float64 { return c.samples[len(c.samples)-1].Level }

// MinDischarge returns the discharge at the lowest level.
func (c *Curve) MinDischarge() float64 { return c.samples[0].Discharge }

// MaxDischarge returns the discharge at the highest level.
func (c *Curve) MaxDischarge() float64 { return c.samples[len(c.samples)-1].Discharge }

// Discharge evaluates the piecewise-linear rating interpolant Q(H).
func (c *Curve) Discharge(h float64) (float64, error) {
	return c.interpolate(h, func(s LevelSample) float64 { return s.Discharge })
}

// Velocity evaluates the piecewise-linear mean-velocity interpolant V(H).
func (c *Curve) Velocity(h float64) (float64, error) {
	return c.interpolate(h, func(s LevelSample) float64 { return s.Velocity })
}

// FlowArea evaluates the piecewise-linear flow-area interpolant A(H).
func (c *Curve) FlowArea(h float64) (float64, error) {
	return c.interpolate(h, func(s LevelSample) float64 { return s.Area })
}

// interpolate is node-exact: querying at a sample level reproduces that
// sample's value bit-for-bit.
func (c *Curve) interpolate(h float64, value func(LevelSample) float64) (float64, error) {
	n := len(c.samples)
	if h < c.samples[0].Level || h > c.samples[n-1].Level {
		return 0, fmt.Errorf("%w: level %g outside [%g, %g]",
			ErrOutOfRange, h, c.samples[0].Level, c.samples[n-1].Level)
	}
	i := sort.Search(n, func(i int) bool { return c.samples[i].Level >= h })
	if c.samples[i].Level == h {
		return value(c.samples[i]), nil
	}
	a, b := c.samples[i-1], c.samples[i]
	t := (h - a.Level) / (b.Level - a.Level)
	return value(a) + t*(value(b)-value(a)), nil
}
