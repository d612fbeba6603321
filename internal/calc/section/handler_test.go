package section

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"Fluvio/internal/hydro"
)

func postCalc(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/tools/section/calc", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	(&Handler{}).Calc(rec, req)
	return rec
}

func TestCalcOK(t *testing.T) {
	rec := postCalc(t, hydro.SectionInput{
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
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res hydro.SectionResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Len(t, res.Samples, 5)
}

func TestCalcBadGeometry(t *testing.T) {
	rec := postCalc(t, hydro.SectionInput{
		Points:   []hydro.Point{{Station: 0, Elevation: 1}},
		Segments: []hydro.Segment{{Name: "channel", Roughness: 0.03, Slope: 0.001}},
		Step:     0.25,
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCalcBadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/section/calc", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	(&Handler{}).Calc(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatus(t *testing.T) {
	for _, err := range []error{
		hydro.ErrInvalidGeometry,
		hydro.ErrInvalidParameter,
		hydro.ErrInvalidStep,
		hydro.ErrNonMonotonicCurve,
		hydro.ErrOutOfRange,
	} {
		require.Equal(t, http.StatusUnprocessableEntity, Status(err))
	}
	require.Equal(t, http.StatusBadRequest, Status(fmt.Errorf("boom")))
}
