package restapi

import (
	"encoding/json"
	"net/http"

	"preplan.flightworks.org/internal/logging"
	"preplan.flightworks.org/internal/models"
)

// serverErrorResponse logs the error and sends a generic 500 so internals
// never leak to clients.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if api.Logger != nil {
		logging.LogError(api.Logger, "internal server error", err,
			"method", r.Method, "path", r.URL.Path)
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// validationErrorResponse sends a 400 with per-field error messages.
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadRequest)

	response := models.ResponseModel{
		Code:        http.StatusBadRequest,
		CurrentTime: models.ResponseCurrentTime(api.Clock),
		Data:        map[string]interface{}{"fieldErrors": fieldErrors},
		Text:        "validation error",
		Version:     2,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}
