package report

import (
	"encoding/json"
	"net/http"

	"Fluvio/internal/calc/batch"
	"Fluvio/internal/hydro"
	"Fluvio/internal/logger"
)

type Handler struct{}

// Request carries raw section inputs; the handler computes them before
// rendering so a client never has to round-trip results through itself.
type Request struct {
	Project  string               `json:"project"`
	Author   string               `json:"author"`
	Title    string               `json:"title"`
	Sections []hydro.SectionInput `json:"sections"`
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := batch.Compute(batch.Input{Sections: req.Sections})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	var computed []*hydro.SectionResult
	for _, item := range res.Items {
		if item.Error == "" {
			computed = append(computed, item.Result)
		} else {
			logger.Warnf("report: section %q skipped: %s", item.Title, item.Error)
		}
	}

	pdf, err := Build(Input{
		Project:  req.Project,
		Author:   req.Author,
		Title:    req.Title,
		Sections: computed,
	})
	if err != nil {
		http.Error(w, "Report error", http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"hydraulic-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		logger.Errorf("report: write pdf: %v", err)
	}
}
