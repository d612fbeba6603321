// Package importer reads cross-section survey workbooks. Every sheet holds
// one section in the established field layout: station/elevation coordinates
// with per-row sector name, roughness and slope columns, a metadata block in
// the description column and a probability/discharge header pair.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Fluvio/internal/calc/roughness"
	"Fluvio/internal/hydro"
	"Fluvio/internal/logger"
)

// Workbook column layout, zero-based. The first sheet row is a header.
const (
	colStation   = 0
	colElevation = 1
	colSector    = 2
	colRoughness = 3
	colSlope     = 4 // per mille
	colMeta      = 8
)

// Probability labels and discharges start at this column of the first two
// data rows. A label suffixed with '*' marks the design high-water entry.
const colProbability = 6

// Metadata lives in the description column of these data rows.
const (
	rowTitle     = 2
	rowDate      = 3
	rowWaterline = 4
	rowStep      = 5 // level step, centimeters
)

// Parse converts every sheet of a workbook into a section input, with all
// file conventions (step cm, slope per mille, probability percent) already
// converted to the SI units the engine expects.
func Parse(f *excelize.File) ([]hydro.SectionInput, error) {
	var out []hydro.SectionInput
	for _, sheet := range f.GetSheetList() {
		in, err := parseSheet(f, sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		out = append(out, in)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return out, nil
}

func parseSheet(f *excelize.File, sheet string) (hydro.SectionInput, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return hydro.SectionInput{}, err
	}
	if len(rows) < 3 {
		return hydro.SectionInput{}, fmt.Errorf("sheet too short: %d rows", len(rows))
	}
	raw := rows[1:] // drop the header row

	in := hydro.SectionInput{
		Title: cell(raw, rowTitle, colMeta),
		Date:  cell(raw, rowDate, colMeta),
	}
	if v, err := parseNumber(cell(raw, rowWaterline, colMeta)); err == nil {
		in.Waterline = v
	}

	// Level step is given in centimeters; 1 cm when absent.
	stepCm, err := parseNumber(cell(raw, rowStep, colMeta))
	if err != nil || stepCm <= 0 {
		stepCm = 1
	}
	in.Step = stepCm / 100

	design, designIdx, err := parseProbabilities(raw)
	if err != nil {
		return hydro.SectionInput{}, err
	}
	in.Design = design
	in.DesignIndex = designIdx

	points, segments, err := parseCoordinates(raw, in.Title)
	if err != nil {
		return hydro.SectionInput{}, err
	}
	in.Points = points
	in.Segments = segments
	return in, nil
}

// parseProbabilities reads the exceedance probability header pair: labels in
// the first data row, discharges in the second.
func parseProbabilities(raw [][]string) ([]hydro.DesignDischarge, int, error) {
	var design []hydro.DesignDischarge
	designIdx := 0
	for c := colProbability; c < len(raw[0]); c++ {
		label := strings.TrimSpace(cell(raw, 0, c))
		value := strings.TrimSpace(cell(raw, 1, c))
		if label == "" || value == "" {
			continue
		}
		if strings.HasSuffix(label, "*") {
			designIdx = len(design)
			label = strings.TrimSuffix(label, "*")
		}
		p, err := parseNumber(label)
		if err != nil {
			return nil, 0, fmt.Errorf("probability label %q: %w", label, err)
		}
		q, err := parseNumber(value)
		if err != nil {
			return nil, 0, fmt.Errorf("discharge for P=%s%%: %w", label, err)
		}
		design = append(design, hydro.DesignDischarge{Probability: p / 100, Discharge: q})
	}
	return design, designIdx, nil
}

// parseCoordinates reads the profile polyline and groups consecutive rows
// with the same sector name into segments. Roughness and slope are taken
// from each sector's first row; slope arrives in per mille.
func parseCoordinates(raw [][]string, title string) ([]hydro.Point, []hydro.Segment, error) {
	var points []hydro.Point
	var segments []hydro.Segment
	current := ""

	for r, row := range raw {
		station, err := parseNumber(cell1(row, colStation))
		if err != nil {
			continue // not a coordinate row
		}
		elevation, err := parseNumber(cell1(row, colElevation))
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: elevation %q: %w", r+2, cell1(row, colElevation), err)
		}
		points = append(points, hydro.Point{Station: station, Elevation: elevation})

		name := strings.TrimSpace(cell1(row, colSector))
		if name == "" || strings.EqualFold(name, current) {
			continue
		}
		n, _ := parseNumber(cell1(row, colRoughness))
		slope, _ := parseNumber(cell1(row, colSlope))
		if !roughness.Plausible(n) {
			logger.Warnf("%s: sector %q has suspicious roughness %g", title, name, n)
		}
		if slope <= 0 || slope > 900 {
			logger.Warnf("%s: sector %q has suspicious slope %g per mille", title, name, slope)
		}
		if len(segments) > 0 {
			segments[len(segments)-1].End = station
		}
		segments = append(segments, hydro.Segment{
			Name:      name,
			Start:     station,
			Roughness: n,
			Slope:     slope / 1000,
		})
		current = name
	}

	if len(points) == 0 {
		return nil, nil, fmt.Errorf("no coordinate rows found")
	}
	if len(segments) == 0 {
		return nil, nil, fmt.Errorf("no sectors found")
	}
	segments[len(segments)-1].End = points[len(points)-1].Station
	return points, segments, nil
}

func cell(rows [][]string, r, c int) string {
	if r >= len(rows) {
		return ""
	}
	return cell1(rows[r], c)
}

func cell1(row []string, c int) string {
	if c >= len(row) {
		return ""
	}
	return row[c]
}

// parseNumber accepts both decimal point and decimal comma, as survey files
// come from either locale.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	return strconv.ParseFloat(s, 64)
}
