package restapi

import (
	"net/http"

	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/utils"
)

func (api *RestAPI) flightsForRequirementHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)

	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	api.MasterData.RLock()
	defer api.MasterData.RUnlock()

	req := api.MasterData.Requirement(id)
	if req == nil {
		api.sendNotFound(w, r)
		return
	}

	rng, err := requirementRange(r, req)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"dateRange": {err.Error()}})
		return
	}

	flights, err := materializeFlights(req, rng)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	list := make([]models.FlightModel, 0, len(flights))
	for _, f := range flights {
		list = append(list, newFlightModel(f))
	}

	response := models.NewListResponse(list, api.requirementReferences(req), api.Clock)
	api.sendResponse(w, r, response)
}
