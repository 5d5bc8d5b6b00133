// Package restapi exposes the preplan engine over HTTP: airports, materialized
// flight instances, signature packs, and the day-offset resolver, all wrapped
// in a uniform JSON envelope.
package restapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"preplan.flightworks.org/internal/app"
	"preplan.flightworks.org/internal/clock"
)

// RestAPI carries the application dependencies into the HTTP handlers.
type RestAPI struct {
	*app.Application

	rateLimiter *RateLimitMiddleware
}

// NewRestAPI builds the API surface, including its per-key rate limiter.
func NewRestAPI(application *app.Application) *RestAPI {
	api := &RestAPI{Application: application}

	c := application.Clock
	if c == nil {
		c = clock.RealClock{}
		api.Application.Clock = c
	}

	api.rateLimiter = NewRateLimitMiddleware(
		application.Config.RateLimit,
		time.Second,
		nil,
		c,
	)
	return api
}

// RateLimiter exposes the middleware so the server can wrap the whole mux.
func (api *RestAPI) RateLimiter() *RateLimitMiddleware {
	return api.rateLimiter
}

// SetRoutes registers every endpoint on the mux. Read endpoints get a
// Cache-Control tier matching how often their data changes; the resolver is
// a computation and is never cached.
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/preplan/current-time.json", api.cached(materializedCacheSeconds, api.currentTimeHandler))
	mux.Handle("GET /api/preplan/config.json", api.cached(masterDataCacheSeconds, api.configHandler))
	mux.Handle("GET /api/preplan/airport/{id}", api.cached(masterDataCacheSeconds, api.airportHandler))
	mux.Handle("GET /api/preplan/airports-for-location.json", api.cached(masterDataCacheSeconds, api.airportsForLocationHandler))
	mux.Handle("GET /api/preplan/flights-for-requirement/{id}", api.cached(materializedCacheSeconds, api.flightsForRequirementHandler))
	mux.Handle("GET /api/preplan/packs-for-requirement/{id}", api.cached(materializedCacheSeconds, api.packsForRequirementHandler))
	mux.Handle("GET /api/preplan/shape-for-requirement/{id}", api.cached(masterDataCacheSeconds, api.shapeForRequirementHandler))
	mux.Handle("POST /api/preplan/resolve.json", api.secured(api.resolveHandler))

	mux.HandleFunc("GET /healthz", api.healthHandler)

	if api.Metrics != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(api.Metrics.Registry, promhttp.HandlerOpts{}))
	}
}

// secured rejects requests without a valid API key before the handler runs.
func (api *RestAPI) secured(handler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.sendUnauthorized(w, r)
			return
		}
		handler(w, r)
	})
}

// cached wraps a secured handler with a Cache-Control tier.
func (api *RestAPI) cached(durationSeconds int, handler http.HandlerFunc) http.Handler {
	return CacheControlMiddleware(durationSeconds, api.secured(handler))
}

// Shutdown stops the background goroutines owned by the API layer.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
