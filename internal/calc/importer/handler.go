package importer

import (
	"encoding/json"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Fluvio/internal/calc/batch"
)

type Handler struct{}

// Import accepts an uploaded survey workbook, parses every sheet as one
// cross-section and computes the whole batch.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	inputs, err := Parse(f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := batch.Compute(batch.Input{Sections: inputs})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
