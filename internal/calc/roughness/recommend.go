package roughness

import "fmt"

// Cover is a land-cover category along the section line, as noted in the
// situation row of a survey.
type Cover string

const (
	CoverWater    Cover = "water"    // clean natural channel
	CoverSand     Cover = "sand"     //
	CoverGravel   Cover = "gravel"   // gravel or pebble bed
	CoverGrass    Cover = "grass"    // meadow, lawn
	CoverField    Cover = "field"    // ploughed land
	CoverReed     Cover = "reed"     // reeds, sedge
	CoverBush     Cover = "bush"     // shrubs
	CoverWood     Cover = "wood"     // forest, undergrowth
	CoverConcrete Cover = "concrete" // concrete or asphalt lining
)

type Input struct {
	Cover     Cover `json:"cover"`
	Overgrown bool  `json:"overgrown"` // dense vegetation, poor maintenance
}

type Result struct {
	Roughness float64 `json:"roughness"`
	Plausible bool    `json:"plausible"`
	Notes     string  `json:"notes"`
}

// Typical metric Manning n per land cover.
var base = map[Cover]float64{
	CoverWater:    0.030,
	CoverSand:     0.026,
	CoverGravel:   0.035,
	CoverGrass:    0.035,
	CoverField:    0.040,
	CoverReed:     0.070,
	CoverBush:     0.080,
	CoverWood:     0.100,
	CoverConcrete: 0.014,
}

// Recommend suggests a Manning roughness coefficient for a land-cover
// category, inflated when the cover is overgrown.
func Recommend(in Input) (Result, error) {
	n, ok := base[in.Cover]
	if !ok {
		return Result{}, fmt.Errorf("unknown cover %q", in.Cover)
	}
	if in.Overgrown {
		n *= 1.3
	}
	return Result{
		Roughness: n,
		Plausible: Plausible(n),
		Notes:     "Typical value; verify against field observations.",
	}, nil
}

// Plausible reports whether n sits inside the usual 0.02–0.2 band for
// natural channels. Values outside it deserve a second look, not a hard
// rejection.
func Plausible(n float64) bool {
	return n >= 0.02 && n <= 0.2
}
