package restapi

import (
	"net/http"

	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/utils"
)

func (api *RestAPI) airportHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)

	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	api.MasterData.RLock()
	defer api.MasterData.RUnlock()

	airport := api.MasterData.Airport(id)
	if airport == nil {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(newAirportModel(airport), models.NewEmptyReferences(), api.Clock)
	api.sendResponse(w, r, response)
}
