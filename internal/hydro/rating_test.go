package hydro_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"Fluvio/internal/hydro"
)

func sweptCurve(t *testing.T) (*hydro.Curve, []hydro.LevelSample) {
	t.Helper()
	p := rectangle()
	segs := []hydro.Segment{
		{Name: "floodplain", Start: 0, End: 6, Roughness: 0.05, Slope: 0.002},
		{Name: "channel", Start: 6, End: 10, Roughness: 0.03, Slope: 0.001},
	}
	samples, err := hydro.Sweep(p, segs, 0.1)
	require.NoError(t, err)
	curve, err := hydro.BuildCurve(samples)
	require.NoError(t, err)
	return curve, samples
}

func TestBuildCurveValidation(t *testing.T) {
	_, err := hydro.BuildCurve([]hydro.LevelSample{{Level: 0}})
	require.ErrorIs(t, err, hydro.ErrNonMonotonicCurve)

	_, err = hydro.BuildCurve([]hydro.LevelSample{
		{Level: 0},
		{Level: 0},
	})
	require.ErrorIs(t, err, hydro.ErrNonMonotonicCurve)

	_, err = hydro.BuildCurve([]hydro.LevelSample{
		{Level: 0, Discharge: 5},
		{Level: 1, Discharge: 4},
	})
	require.ErrorIs(t, err, hydro.ErrNonMonotonicCurve)

	_, err = hydro.BuildCurve([]hydro.LevelSample{
		{Level: 0, Discharge: 1, Area: 3},
		{Level: 1, Discharge: 2, Area: 2},
	})
	require.ErrorIs(t, err, hydro.ErrNonMonotonicCurve)

	// Flat stretches are allowed; only decreases are malformed.
	_, err = hydro.BuildCurve([]hydro.LevelSample{
		{Level: 0, Discharge: 1, Area: 1},
		{Level: 1, Discharge: 1, Area: 1},
	})
	require.NoError(t, err)
}

func TestCurveRoundTripAtNodes(t *testing.T) {
	curve, samples := sweptCurve(t)
	for _, s := range samples {
		q, err := curve.Discharge(s.Level)
		require.NoError(t, err)
		require.Equal(t, s.Discharge, q)

		v, err := curve.Velocity(s.Level)
		require.NoError(t, err)
		require.Equal(t, s.Velocity, v)

		a, err := curve.FlowArea(s.Level)
		require.NoError(t, err)
		require.Equal(t, s.Area, a)
	}
}

func TestCurveInterpolatesBetweenNodes(t *testing.T) {
	curve, samples := sweptCurve(t)
	a, b := samples[3], samples[4]
	mid := (a.Level + b.Level) / 2

	q, err := curve.Discharge(mid)
	require.NoError(t, err)
	require.InDelta(t, (a.Discharge+b.Discharge)/2, q, 1e-12)

	v, err := curve.Velocity(mid)
	require.NoError(t, err)
	require.InDelta(t, (a.Velocity+b.Velocity)/2, v, 1e-12)
}

func TestCurveOutOfRange(t *testing.T) {
	curve, _ := sweptCurve(t)

	_, err := curve.Discharge(curve.MinLevel() - 0.01)
	require.ErrorIs(t, err, hydro.ErrOutOfRange)

	_, err = curve.Velocity(curve.MaxLevel() + 0.01)
	require.ErrorIs(t, err, hydro.ErrOutOfRange)
}

func TestCurveBounds(t *testing.T) {
	curve, samples := sweptCurve(t)
	require.Equal(t, samples[0].Level, curve.MinLevel())
	require.Equal(t, samples[len(samples)-1].Level, curve.MaxLevel())
	require.Equal(t, samples[0].Discharge, curve.MinDischarge())
	require.Equal(t, samples[len(samples)-1].Discharge, curve.MaxDischarge())
}
