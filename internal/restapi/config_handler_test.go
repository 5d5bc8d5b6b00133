package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/preplan/config.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	assert.Equal(t, "preplan-engine", entry["id"])
	assert.Equal(t, "Flightworks Preplan", entry["name"])

	// Both test requirements run 2024-01-06 through 2024-03-02.
	assert.Equal(t, "2024-01-06", entry["serviceDateFrom"])
	assert.Equal(t, "2024-03-02", entry["serviceDateTo"])

	gitProps, ok := entry["gitProperties"].(map[string]interface{})
	require.True(t, ok, "could not find gitProperties in entry")
	assert.Equal(t, "dev", gitProps["git.build.version"])
}

func TestConfigHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/preplan/config.json?key=bogus")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
