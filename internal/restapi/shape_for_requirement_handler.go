package restapi

import (
	"net/http"

	"github.com/twpayne/go-polyline"
	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/utils"
)

// shapeForRequirementHandler encodes the requirement's route as a polyline
// through its airports, in leg order, for map rendering.
func (api *RestAPI) shapeForRequirementHandler(w http.ResponseWriter, r *http.Request) {
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

	var coords [][]float64
	var lengthMeters float64
	appendAirport := func(code string) {
		ap := api.MasterData.Airport(code)
		if ap == nil {
			return
		}
		if n := len(coords); n > 0 {
			prev := coords[n-1]
			if prev[0] == ap.Lat && prev[1] == ap.Lon {
				return
			}
			lengthMeters += utils.Distance(prev[0], prev[1], ap.Lat, ap.Lon)
		}
		coords = append(coords, []float64{ap.Lat, ap.Lon})
	}
	for _, leg := range req.Legs {
		appendAirport(leg.DepartureAirport)
		appendAirport(leg.ArrivalAirport)
	}

	if len(coords) == 0 {
		api.sendNotFound(w, r)
		return
	}

	entry := models.ShapeModel{
		Points:   string(polyline.EncodeCoords(coords)),
		Length:   len(coords),
		LengthKm: lengthMeters / 1000,
	}

	response := models.NewEntryResponse(entry, api.requirementReferences(req), api.Clock)
	api.sendResponse(w, r, response)
}
