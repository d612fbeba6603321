package batch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"Fluvio/internal/hydro"
)

func channelInput(title string) hydro.SectionInput {
	return hydro.SectionInput{
		Title: title,
		Points: []hydro.Point{
			{Station: 0, Elevation: 1},
			{Station: 0, Elevation: 0},
			{Station: 10, Elevation: 0},
			{Station: 10, Elevation: 1},
		},
		Segments: []hydro.Segment{
			{Name: "channel", Start: 0, End: 10, Roughness: 0.03, Slope: 0.001},
		},
		Step: 0.25,
	}
}

func TestComputeKeepsInputOrder(t *testing.T) {
	in := Input{}
	for i := 0; i < 8; i++ {
		in.Sections = append(in.Sections, channelInput(fmt.Sprintf("PK-%d", i)))
	}

	res, err := Compute(in)
	require.NoError(t, err)
	require.Len(t, res.Items, 8)
	for i, item := range res.Items {
		require.Equal(t, fmt.Sprintf("PK-%d", i), item.Title)
		require.Empty(t, item.Error)
		require.NotNil(t, item.Result)
	}
	require.Zero(t, res.Failed)
	require.Len(t, res.Summary.Sections, 8)
}

func TestComputeIsolatesFailures(t *testing.T) {
	bad := channelInput("broken")
	bad.Points[2].Station = -5 // stations must not decrease

	res, err := Compute(Input{Sections: []hydro.SectionInput{
		channelInput("ok-1"),
		bad,
		channelInput("ok-2"),
	}})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)

	require.NotNil(t, res.Items[0].Result)
	require.Nil(t, res.Items[1].Result)
	require.NotEmpty(t, res.Items[1].Error)
	require.NotNil(t, res.Items[2].Result)

	require.Equal(t, 1, res.Failed)
	require.Len(t, res.Summary.Sections, 2)
}

func TestComputeEmpty(t *testing.T) {
	_, err := Compute(Input{})
	require.Error(t, err)
}
