package section

import (
	"encoding/json"
	"errors"
	"net/http"

	"Fluvio/internal/hydro"
	"Fluvio/internal/logger"
)

type Handler struct{}

// Calc computes one cross-section from JSON input.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input hydro.SectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := hydro.Compute(input)
	if err != nil {
		logger.Warnf("section calc %q: %v", input.Title, err)
		http.Error(w, err.Error(), Status(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Status maps engine errors to HTTP codes. Every engine error means bad
// input data, never a transient failure.
func Status(err error) int {
	switch {
	case errors.Is(err, hydro.ErrInvalidGeometry),
		errors.Is(err, hydro.ErrInvalidParameter),
		errors.Is(err, hydro.ErrInvalidStep),
		errors.Is(err, hydro.ErrNonMonotonicCurve),
		errors.Is(err, hydro.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
