package report

import (
	"fmt"

	"github.com/phpdave11/gofpdf"

	"Fluvio/internal/hydro"
)

type Input struct {
	Project  string                 `json:"project"`
	Author   string                 `json:"author"`
	Title    string                 `json:"title"`
	Sections []*hydro.SectionResult `json:"sections"`
}

// Build renders the hydraulic report: per cross-section a design-point
// table, the per-segment summary at the design level, the rating table and
// a Q(H)/V(H) chart.
func Build(in Input) (*gofpdf.Fpdf, error) {
	if len(in.Sections) == 0 {
		return nil, fmt.Errorf("no sections")
	}
	if in.Title == "" {
		in.Title = "Hydraulic Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(10)

	for _, sec := range in.Sections {
		writeSection(pdf, sec)
	}
	return pdf, nil
}

func writeSection(pdf *gofpdf.Fpdf, sec *hydro.SectionResult) {
	pdf.SetFont("Helvetica", "B", 13)
	title := sec.Title
	if title == "" {
		title = "Cross-section"
	}
	if sec.Date != "" {
		title = fmt.Sprintf("%s (%s)", title, sec.Date)
	}
	pdf.Cell(0, 8, title)
	pdf.Ln(10)

	if len(sec.Design) > 0 {
		writeDesignTable(pdf, sec.Design)
	}
	if len(sec.Segments) > 0 {
		writeSegmentTable(pdf, sec)
	}
	writeChart(pdf, sec.Samples)
	writeRatingTable(pdf, sec)
}

func writeDesignTable(pdf *gofpdf.Fpdf, design []hydro.DesignResult) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Design discharges")
	pdf.Ln(7)
	header(pdf, []string{"P, %", "Q, m3/s", "H, m", "V, m/s"}, 30)
	pdf.SetFont("Helvetica", "", 10)
	for _, d := range design {
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", d.Probability*100), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", d.Discharge), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", d.Level), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", d.Velocity), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func writeSegmentTable(pdf *gofpdf.Fpdf, sec *hydro.SectionResult) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Segments at design level H = %.2f m", sec.DesignLevel))
	pdf.Ln(7)
	header(pdf, []string{"Segment", "n", "i", "F, m2", "Q, m3/s", "V, m/s"}, 30)
	pdf.SetFont("Helvetica", "", 10)
	for _, s := range sec.Segments {
		pdf.CellFormat(30, 6, s.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.3f", s.Roughness), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.4f", s.Slope), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", s.Area), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", s.Discharge), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", s.Velocity), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

// writeChart draws the rating and velocity curves with line primitives:
// level on the vertical axis, discharge and velocity scaled to a shared
// horizontal axis.
func writeChart(pdf *gofpdf.Fpdf, samples []hydro.LevelSample) {
	if len(samples) < 2 {
		return
	}
	const (
		boxW = 170.0
		boxH = 70.0
	)
	if pdf.GetY()+boxH+20 > 280 {
		pdf.AddPage()
	}
	x0, y0 := 20.0, pdf.GetY()

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x0, y0, boxW, boxH, "D")

	minH := samples[0].Level
	maxH := samples[len(samples)-1].Level
	maxQ := samples[len(samples)-1].Discharge
	maxV := 0.0
	for _, s := range samples {
		if s.Velocity > maxV {
			maxV = s.Velocity
		}
	}

	plot := func(value func(hydro.LevelSample) float64, max float64) {
		if max <= 0 {
			return
		}
		for i := 1; i < len(samples); i++ {
			a, b := samples[i-1], samples[i]
			ax := x0 + value(a)/max*boxW
			bx := x0 + value(b)/max*boxW
			ay := y0 + boxH - (a.Level-minH)/(maxH-minH)*boxH
			by := y0 + boxH - (b.Level-minH)/(maxH-minH)*boxH
			pdf.Line(ax, ay, bx, by)
		}
	}

	pdf.SetDrawColor(0, 90, 200)
	pdf.SetLineWidth(0.4)
	plot(func(s hydro.LevelSample) float64 { return s.Discharge }, maxQ)

	pdf.SetDrawColor(200, 60, 30)
	plot(func(s hydro.LevelSample) float64 { return s.Velocity }, maxV)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetY(y0 + boxH + 2)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 4, fmt.Sprintf("Q = f(H) blue, V = f(H) red; H %.2f-%.2f m, Qmax %.2f m3/s, Vmax %.2f m/s",
		minH, maxH, maxQ, maxV))
	pdf.Ln(8)
}

func writeRatingTable(pdf *gofpdf.Fpdf, sec *hydro.SectionResult) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Rating curve")
	pdf.Ln(7)
	header(pdf, []string{"H, m", "F, m2", "Q, m3/s", "V, m/s", "Cv"}, 30)
	pdf.SetFont("Helvetica", "", 10)
	for i, s := range sec.Samples {
		if pdf.GetY() > 270 {
			pdf.AddPage()
		}
		cv := 0.0
		if i < len(sec.Variation) {
			cv = sec.Variation[i].CV
		}
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", s.Level), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", s.Area), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", s.Discharge), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", s.Velocity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.3f", cv), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func header(pdf *gofpdf.Fpdf, cols []string, w float64) {
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		pdf.CellFormat(w, 6, c, "1", ln, "C", false, 0, "")
	}
}
