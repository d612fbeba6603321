package batch

import (
	"fmt"
	"sync"

	"Fluvio/internal/hydro"
)

type Input struct {
	Sections []hydro.SectionInput `json:"sections"`
}

// Item is one section's outcome. A failed section carries Error and a nil
// Result; it never blocks the rest of the batch.
type Item struct {
	Title  string               `json:"title,omitempty"`
	Result *hydro.SectionResult `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

type Result struct {
	Items   []Item        `json:"items"`
	Failed  int           `json:"failed"`
	Summary hydro.Summary `json:"summary"`
}

// Compute runs every cross-section on its own goroutine. Sections share no
// state, so workers only write their own indexed slot; the output order
// follows the input regardless of completion order.
func Compute(in Input) (Result, error) {
	if len(in.Sections) == 0 {
		return Result{}, fmt.Errorf("no sections")
	}
	items := make([]Item, len(in.Sections))
	var wg sync.WaitGroup
	for i, sec := range in.Sections {
		wg.Add(1)
		go func(i int, sec hydro.SectionInput) {
			defer wg.Done()
			items[i].Title = sec.Title
			res, err := hydro.Compute(sec)
			if err != nil {
				items[i].Error = err.Error()
				return
			}
			items[i].Result = res
		}(i, sec)
	}
	wg.Wait()

	out := Result{Items: items}
	computed := make([]*hydro.SectionResult, 0, len(items))
	for _, it := range items {
		if it.Result != nil {
			computed = append(computed, it.Result)
		} else {
			out.Failed++
		}
	}
	out.Summary = hydro.Aggregate(computed)
	return out, nil
}
