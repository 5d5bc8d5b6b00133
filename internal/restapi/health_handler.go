package restapi

import (
	"encoding/json"
	"net/http"

	"preplan.flightworks.org/internal/logging"
)

// HealthResponse represents the JSON response from the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// healthHandler verifies database connectivity and readiness.
// It returns 503 Service Unavailable until the master data is fully imported
// and indexed.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// 1. Liveness: is the basic infrastructure initialized?
	if api.Application == nil || api.MasterData == nil || api.MasterData.PlanDB == nil || api.MasterData.PlanDB.DB == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: "unavailable",
			Detail: "manager or database not initialized",
		})
		return
	}

	// 2. Readiness: is the master data indexed and ready for traffic?
	// This prevents routing traffic to cold instances still building indexes.
	if !api.MasterData.IsReady() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: "starting",
			Detail: "master data is being imported and indexed",
		})
		return
	}

	// 3. Connectivity: is the database actually reachable?
	if err := api.MasterData.PlanDB.DB.PingContext(r.Context()); err != nil {
		logging.LogError(api.Logger, "plandb ping failed", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: "unavailable",
			Detail: "database connection failed",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status: "ok",
	})
}
