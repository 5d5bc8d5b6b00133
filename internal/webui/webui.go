// Package webui serves the operator-facing debug pages. Everything here is
// disabled in production.
package webui

import (
	"net/http"

	"preplan.flightworks.org/internal/app"
)

// WebUI carries the application dependencies into the debug handlers.
type WebUI struct {
	*app.Application
}

func NewWebUI(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}

// SetWebUIRoutes registers the debug pages on the mux.
func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug", webUI.debugIndexHandler)
}
