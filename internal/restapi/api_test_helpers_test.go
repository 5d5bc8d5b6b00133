package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"preplan.flightworks.org/internal/app"
	"preplan.flightworks.org/internal/appconf"
	"preplan.flightworks.org/internal/clock"
	"preplan.flightworks.org/internal/masterdata"
	"preplan.flightworks.org/internal/models"
)

func testMasterDataPath() string {
	return filepath.Join("..", "..", "testdata", "masterdata.json")
}

func createTestApiWithClock(t *testing.T, c clock.Clock) *RestAPI {
	t.Helper()

	manager, err := masterdata.InitManager(masterdata.Config{
		DataPath:       ":memory:",
		MasterDataPath: testMasterDataPath(),
		Env:            appconf.Test,
	})
	require.NoError(t, err)

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.Test,
			ApiKeys:   []string{"TEST"},
			RateLimit: 100,
		},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		MasterData: manager,
		Clock:      c,
	}

	api := NewRestAPI(application)
	t.Cleanup(func() {
		api.Shutdown()
		manager.Shutdown()
	})
	return api
}

func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithClock(t, clock.RealClock{})
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var model models.ResponseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&model))
	return resp, model
}

func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	t.Helper()

	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func servePostAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string, body any) (*http.Response, models.ResponseModel) {
	t.Helper()

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+endpoint, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var model models.ResponseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&model))
	return resp, model
}

// listFromModel digs the list out of a decoded list response.
func listFromModel(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "could not cast data to expected type")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "could not find list in response data")
	return list
}

// entryFromModel digs the entry out of a decoded entry response.
func entryFromModel(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "could not cast data to expected type")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "could not find entry in response data")
	return entry
}
