package hydro_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"Fluvio/internal/hydro"
)

// rectangle is a 10 m wide rectangular channel with 1 m vertical banks.
func rectangle() *hydro.Profile {
	p, err := hydro.NewProfile([]hydro.Point{
		{Station: 0, Elevation: 1},
		{Station: 0, Elevation: 0},
		{Station: 10, Elevation: 0},
		{Station: 10, Elevation: 1},
	})
	if err != nil {
		panic(err)
	}
	return p
}

func fullWidth(p *hydro.Profile, n, slope float64) hydro.Segment {
	pts := p.Points
	return hydro.Segment{
		Name:      "channel",
		Start:     pts[0].Station,
		End:       pts[len(pts)-1].Station,
		Roughness: n,
		Slope:     slope,
	}
}

func TestNewProfileRejectsBadInput(t *testing.T) {
	_, err := hydro.NewProfile([]hydro.Point{{Station: 0, Elevation: 1}})
	require.ErrorIs(t, err, hydro.ErrInvalidGeometry)

	_, err = hydro.NewProfile([]hydro.Point{
		{Station: 0, Elevation: 1},
		{Station: 5, Elevation: 0},
		{Station: 3, Elevation: 1},
	})
	require.ErrorIs(t, err, hydro.ErrInvalidGeometry)

	_, err = hydro.NewProfile([]hydro.Point{
		{Station: 2, Elevation: 1},
		{Station: 2, Elevation: 0},
	})
	require.ErrorIs(t, err, hydro.ErrInvalidGeometry)
}

func TestReduceRectangle(t *testing.T) {
	p := rectangle()
	seg := fullWidth(p, 0.03, 0.001)

	// Bankfull: bed plus both walls.
	area, perim, err := hydro.Reduce(p, seg, 1.0)
	require.NoError(t, err)
	require.InDelta(t, 10.0, area, 1e-12)
	require.InDelta(t, 12.0, perim, 1e-12)

	area, perim, err = hydro.Reduce(p, seg, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 5.0, area, 1e-12)
	require.InDelta(t, 11.0, perim, 1e-12)

	// Level at the invert: dry.
	area, perim, err = hydro.Reduce(p, seg, 0)
	require.NoError(t, err)
	require.Zero(t, area)
	require.Zero(t, perim)

	// Below the invert: still dry, never an error.
	area, perim, err = hydro.Reduce(p, seg, -2)
	require.NoError(t, err)
	require.Zero(t, area)
	require.Zero(t, perim)
}

func TestReduceTriangle(t *testing.T) {
	p, err := hydro.NewProfile([]hydro.Point{
		{Station: 0, Elevation: 1},
		{Station: 5, Elevation: 0},
		{Station: 10, Elevation: 1},
	})
	require.NoError(t, err)

	area, perim, err := hydro.Reduce(p, fullWidth(p, 0.03, 0.001), 1.0)
	require.NoError(t, err)
	require.InDelta(t, 5.0, area, 1e-12)
	require.InDelta(t, 2*math.Hypot(5, 1), perim, 1e-12)

	// Half depth wets only the middle of the vee.
	area, perim, err = hydro.Reduce(p, fullWidth(p, 0.03, 0.001), 0.5)
	require.NoError(t, err)
	require.InDelta(t, 1.25, area, 1e-12)
	require.InDelta(t, math.Hypot(5, 1), perim, 1e-12)
}

func TestReduceSegmentClippingIsAdditive(t *testing.T) {
	// A sloped bed crossing the boundary between two segments: the clipped
	// halves must sum to the whole.
	p, err := hydro.NewProfile([]hydro.Point{
		{Station: 0, Elevation: 2},
		{Station: 8, Elevation: 0},
		{Station: 12, Elevation: 0},
		{Station: 20, Elevation: 2},
	})
	require.NoError(t, err)

	whole := hydro.Segment{Name: "all", Start: 0, End: 20}
	left := hydro.Segment{Name: "left", Start: 0, End: 10}
	right := hydro.Segment{Name: "right", Start: 10, End: 20}

	for _, level := range []float64{0.25, 0.7, 1.3, 2.0} {
		aw, pw, err := hydro.Reduce(p, whole, level)
		require.NoError(t, err)
		al, pl, err := hydro.Reduce(p, left, level)
		require.NoError(t, err)
		ar, pr, err := hydro.Reduce(p, right, level)
		require.NoError(t, err)
		require.InDelta(t, aw, al+ar, 1e-12, "area at level %g", level)
		require.InDelta(t, pw, pl+pr, 1e-12, "perimeter at level %g", level)
	}
}

func TestReduceRejectsDecreasingStations(t *testing.T) {
	// Built directly to bypass NewProfile validation.
	p := &hydro.Profile{Points: []hydro.Point{
		{Station: 0, Elevation: 1},
		{Station: 5, Elevation: 0},
		{Station: 4, Elevation: 1},
	}}
	_, _, err := hydro.Reduce(p, hydro.Segment{Start: 0, End: 5}, 0.5)
	require.ErrorIs(t, err, hydro.ErrInvalidGeometry)
}

func TestValidateSegments(t *testing.T) {
	p := rectangle()

	ok := []hydro.Segment{
		{Name: "left", Start: 0, End: 4},
		{Name: "right", Start: 4, End: 10},
	}
	require.NoError(t, hydro.ValidateSegments(p, ok))

	gap := []hydro.Segment{
		{Name: "left", Start: 0, End: 4},
		{Name: "right", Start: 5, End: 10},
	}
	require.ErrorIs(t, hydro.ValidateSegments(p, gap), hydro.ErrInvalidGeometry)

	overlap := []hydro.Segment{
		{Name: "left", Start: 0, End: 6},
		{Name: "right", Start: 4, End: 10},
	}
	require.ErrorIs(t, hydro.ValidateSegments(p, overlap), hydro.ErrInvalidGeometry)

	short := []hydro.Segment{{Name: "left", Start: 0, End: 8}}
	require.ErrorIs(t, hydro.ValidateSegments(p, short), hydro.ErrInvalidGeometry)

	require.ErrorIs(t, hydro.ValidateSegments(p, nil), hydro.ErrInvalidGeometry)

	empty := []hydro.Segment{
		{Name: "left", Start: 0, End: 0},
		{Name: "right", Start: 0, End: 10},
	}
	require.ErrorIs(t, hydro.ValidateSegments(p, empty), hydro.ErrInvalidGeometry)
}
