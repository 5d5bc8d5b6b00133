package restapi

import (
	"net/http"

	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/utils"
)

// defaultLocationSpan is the half-span, in degrees, used when the caller
// does not narrow the search box.
const defaultLocationSpan = 1.0

func (api *RestAPI) airportsForLocationHandler(w http.ResponseWriter, r *http.Request) {
	fieldErrors := map[string][]string{}

	lat, err := utils.ParseFloatParam(r, "lat")
	if err != nil {
		fieldErrors["lat"] = append(fieldErrors["lat"], err.Error())
	}
	lon, err := utils.ParseFloatParam(r, "lon")
	if err != nil {
		fieldErrors["lon"] = append(fieldErrors["lon"], err.Error())
	}
	latSpan, err := utils.ParseFloatParamWithDefault(r, "latSpan", defaultLocationSpan)
	if err != nil {
		fieldErrors["latSpan"] = append(fieldErrors["latSpan"], err.Error())
	}
	lonSpan, err := utils.ParseFloatParamWithDefault(r, "lonSpan", defaultLocationSpan)
	if err != nil {
		fieldErrors["lonSpan"] = append(fieldErrors["lonSpan"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	api.MasterData.RLock()
	defer api.MasterData.RUnlock()

	found := api.MasterData.AirportsWithin(lat, lon, latSpan, lonSpan)

	list := make([]models.AirportModel, 0, len(found))
	for _, ap := range found {
		list = append(list, newAirportModel(ap))
	}

	response := models.NewListResponse(list, models.NewEmptyReferences(), api.Clock)
	api.sendResponse(w, r, response)
}
