package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacksForRequirementHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/preplan/packs-for-requirement/FR42.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Saturday and Monday run the identical local schedule, so every
	// occurrence shares one signature and lands in a single pack.
	list := listFromModel(t, model)
	require.Len(t, list, 1)

	pack := list[0].(map[string]interface{})
	assert.Equal(t, float64(1), pack["id"])
	assert.Equal(t, "FR42-20240106", pack["sourceFlightId"])
	assert.Len(t, pack["flightIds"].([]interface{}), 17)

	// Departure times are grouped on the departure airport's local clock:
	// 06:30 UTC out of Tehran (+210) is 10:00 local.
	signature, ok := pack["signature"].([]interface{})
	require.True(t, ok)
	require.Len(t, signature, 2)
	leg0 := signature[0].(map[string]interface{})
	assert.Equal(t, float64(10), leg0["localHour"])
	assert.Equal(t, float64(0), leg0["localMinute"])
	assert.Equal(t, float64(205), leg0["blockMinutes"])

	// The Saturday cadence is complete over the range.
	_, hasNote := pack["cancellationNote"]
	assert.False(t, hasNote)

	assert.Equal(t, false, pack["hasTimeChange"])
	assert.Equal(t, false, pack["inDstChange"])
}

func TestPacksForRequirementHandlerPermissions(t *testing.T) {
	_, _, model := serveAndRetrieveEndpoint(t, "/api/preplan/packs-for-requirement/FR42.json?key=TEST")

	pack := listFromModel(t, model)[0].(map[string]interface{})
	permissions, ok := pack["permissions"].([]interface{})
	require.True(t, ok)
	// Two legs, each scheduled on Saturday and Monday.
	require.Len(t, permissions, 4)

	var mondayReturn map[string]interface{}
	for _, item := range permissions {
		perm := item.(map[string]interface{})
		if perm["legIndex"] == float64(1) && perm["day"] == "Monday" {
			mondayReturn = perm
		}
	}
	require.NotNil(t, mondayReturn, "expected permissions for leg 1 on Monday")

	destination, ok := mondayReturn["destination"].([]interface{})
	require.True(t, ok)
	require.Len(t, destination, 1)
	window := destination[0].(map[string]interface{})
	assert.Equal(t, false, window["hasPermission"])
	assert.Equal(t, "blocked", window["userNote"])
	assert.Equal(t, "2024-01-08", window["fromDate"])
	assert.Equal(t, "2024-02-26", window["toDate"])
}

func TestPacksForRequirementHandlerSingleWeekday(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/preplan/packs-for-requirement/FR77.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromModel(t, model)
	require.Len(t, list, 1)
	pack := list[0].(map[string]interface{})
	assert.Len(t, pack["flightDates"].([]interface{}), 8)
}

func TestPacksForRequirementHandlerNotFound(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/preplan/packs-for-requirement/FR99.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
