package restapi

import (
	"net/http"

	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/packs"
	"preplan.flightworks.org/internal/utils"
)

func (api *RestAPI) packsForRequirementHandler(w http.ResponseWriter, r *http.Request) {
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

	// Pack ids only need to be unique within one response; every rebuild
	// starts a fresh allocator.
	ids := packs.NewIDAllocator()
	built := packs.BuildPacks(flights, rng, api.MasterData.AirportLookup(), ids)

	list := make([]models.PackModel, 0, len(built))
	for _, pack := range built {
		list = append(list, newPackModel(pack))
	}

	response := models.NewListResponse(list, api.requirementReferences(req), api.Clock)
	api.sendResponse(w, r, response)
}
