package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"preplan.flightworks.org/internal/app"
	"preplan.flightworks.org/internal/appconf"
	"preplan.flightworks.org/internal/masterdata"
	"preplan.flightworks.org/internal/metrics"
	"preplan.flightworks.org/internal/restapi"
	"preplan.flightworks.org/internal/webui"
)

const dbStatsInterval = 15 * time.Second

// ParseAPIKeys splits a comma-separated key list, trimming whitespace around
// each entry. Empty entries are preserved so a misconfigured list surfaces
// instead of silently shrinking.
func ParseAPIKeys(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		keys = append(keys, strings.TrimSpace(part))
	}
	return keys
}

// BuildApplication wires the shared dependencies: logger, master data
// manager, and metrics.
func BuildApplication(cfg appconf.Config, mdCfg masterdata.Config) (*app.Application, error) {
	logLevel := slog.LevelInfo
	if cfg.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	manager, err := masterdata.InitManager(mdCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize master data manager: %w", err)
	}

	appMetrics := metrics.NewWithLogger(logger)
	appMetrics.StartDBStatsCollector(manager.PlanDB.DB, dbStatsInterval)

	return &app.Application{
		Config:           cfg,
		MasterDataConfig: mdCfg,
		Logger:           logger,
		MasterData:       manager,
		Metrics:          appMetrics,
	}, nil
}

// CreateServer builds the HTTP server with the middleware chain wrapped
// around the route mux: request id, request logging, metrics, gzip, and
// per-key rate limiting, outermost first.
func CreateServer(coreApp *app.Application, cfg appconf.Config) (*http.Server, *restapi.RestAPI) {
	api := restapi.NewRestAPI(coreApp)

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	webui.NewWebUI(coreApp).SetWebUIRoutes(mux)

	var handler http.Handler = mux
	handler = api.RateLimiter().Handler()(handler)
	handler = restapi.GzipMiddleware(handler)
	handler = restapi.MetricsHandler(coreApp.Metrics)(handler)
	handler = restapi.NewRequestLoggingMiddleware(coreApp.Logger)(handler)
	handler = restapi.RequestIDMiddleware(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return srv, api
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests and shuts
// down the background workers.
func Run(coreApp *app.Application, cfg appconf.Config) error {
	srv, api := CreateServer(coreApp, cfg)

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		coreApp.Logger.Info("shutting down server", slog.String("signal", s.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	coreApp.Logger.Info("starting server",
		slog.String("addr", srv.Addr),
		slog.String("env", cfg.Env.String()))

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	api.Shutdown()
	if coreApp.Metrics != nil {
		coreApp.Metrics.Shutdown()
	}
	coreApp.MasterData.Shutdown()

	coreApp.Logger.Info("stopped server", slog.String("addr", srv.Addr))
	return nil
}
