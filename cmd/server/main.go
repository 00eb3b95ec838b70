// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/academicworld/internal/api"
	"github.com/tomtom215/academicworld/internal/config"
	"github.com/tomtom215/academicworld/internal/dashboard"
	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/supervisor"
	"github.com/tomtom215/academicworld/internal/supervisor/services"
	ws "github.com/tomtom215/academicworld/internal/websocket"
)

type namedService interface {
	suture.Service
	String() string
}

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred closes still happen.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("db_driver", cfg.Database.Driver).
		Bool("breakers", cfg.Breaker.Enabled).
		Msg("Starting Academic World dashboard")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to open stores")
		return 1
	}
	defer st.close()

	widgets := dashboard.NewService(st.db, st.docs, &cfg.Dashboard)
	favorites := dashboard.NewFavorites(st.db, st.graph, cfg.Dashboard.QueryTimeout)

	wsHub := ws.NewHub()
	favorites.SetNotifier(wsHub)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" && cfg.IsProduction() {
			logging.Warn().Msg("CORS_ORIGINS=* in production allows any site to call the API")
		}
	}

	handler := api.NewHandler(widgets, favorites, st.checks(), wsHub, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}
	supervised := []struct {
		layer supervisor.Layer
		svc   namedService
	}{
		{supervisor.LayerMessaging, services.NewWebSocketHubService(wsHub)},
		{supervisor.LayerAPI, services.NewHTTPServerService(server, treeCfg.ShutdownTimeout)},
	}
	for _, s := range supervised {
		if _, err := tree.Add(s.layer, s.svc); err != nil {
			logging.Error().Err(err).Msg("Failed to add supervised service")
			return 1
		}
		logging.Info().Str("layer", s.layer.String()).Str("service", s.svc.String()).Msg("Supervised service added")
	}
	logging.Info().Str("addr", server.Addr).Msg("HTTP server listening address")

	// Warm the last-known-good snapshot so the first websocket subscriber
	// gets the favorites table immediately.
	if _, err := favorites.Snapshot(ctx); err != nil {
		logging.Warn().Err(err).Msg("Initial favorites snapshot failed")
	}

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	// errCh delivers one value and is never closed.
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
	return 0
}
