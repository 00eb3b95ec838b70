// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/academicworld/internal/middleware"
)

// Router owns the handler and the middleware factories.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi builds the route tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, ErrMethodNotAllowed.Error(), nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/options", router.handler.DashboardOptions)
			r.Get("/defaults", router.handler.DashboardDefaults)
		})

		r.Route("/widgets", func(r chi.Router) {
			r.Get("/keyword-publications", router.handler.KeywordPublications)
			r.Get("/top-publications", router.handler.TopPublications)
			r.Get("/faculty-topics", router.handler.FacultyTopics)
			r.Get("/publication-topics", router.handler.PublicationTopics)
			r.Get("/spotlight", router.handler.Spotlight)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", router.handler.Favorites)
			r.With(router.chiMiddleware.RateLimitWrite()).Post("/", router.handler.AddFavorite)
			r.With(router.chiMiddleware.RateLimitWrite()).Delete("/", router.handler.RemoveFavorite)
		})

		r.Get("/ws", router.handler.WebSocket)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
