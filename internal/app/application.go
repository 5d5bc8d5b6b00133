package app

import (
	"log/slog"

	"preplan.flightworks.org/internal/appconf"
	"preplan.flightworks.org/internal/clock"
	"preplan.flightworks.org/internal/masterdata"
	"preplan.flightworks.org/internal/metrics"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config           appconf.Config
	MasterDataConfig masterdata.Config
	Logger           *slog.Logger
	MasterData       *masterdata.Manager
	Clock            clock.Clock
	Metrics          *metrics.Metrics
}
