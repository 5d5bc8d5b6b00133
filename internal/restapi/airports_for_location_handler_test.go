package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirportsForLocationHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t,
		"/api/preplan/airports-for-location.json?key=TEST&lat=41.27&lon=28.75&latSpan=2&lonSpan=2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromModel(t, model)
	require.Len(t, list, 1)
	airport := list[0].(map[string]interface{})
	assert.Equal(t, "IST", airport["iata"])
}

func TestAirportsForLocationHandlerDefaultSpan(t *testing.T) {
	// Default 1-degree half-span around Tehran catches only THR.
	_, resp, model := serveAndRetrieveEndpoint(t,
		"/api/preplan/airports-for-location.json?key=TEST&lat=35.7&lon=51.3")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ids := collectAllIdsFromObjects(t, listFromModel(t, model), "iata")
	assert.Equal(t, []string{"THR"}, ids)
}

func TestAirportsForLocationHandlerEmptyResult(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t,
		"/api/preplan/airports-for-location.json?key=TEST&lat=0&lon=-30")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, listFromModel(t, model))
}

func TestAirportsForLocationHandlerValidation(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
	}{
		{"missing lat", "/api/preplan/airports-for-location.json?key=TEST&lon=28.75"},
		{"missing lon", "/api/preplan/airports-for-location.json?key=TEST&lat=41.27"},
		{"malformed lat", "/api/preplan/airports-for-location.json?key=TEST&lat=abc&lon=28.75"},
		{"malformed span", "/api/preplan/airports-for-location.json?key=TEST&lat=41.27&lon=28.75&latSpan=wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, model := serveAndRetrieveEndpoint(t, tt.endpoint)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "validation error", model.Text)
		})
	}
}
