// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/academicworld/internal/config"
	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/models"
	ws "github.com/tomtom215/academicworld/internal/websocket"
)

// WidgetService is implemented by *dashboard.Service.
type WidgetService interface {
	KeywordPublications(ctx context.Context, limit int) ([]models.KeywordPublicationCount, error)
	TopPublications(ctx context.Context, keyword string) ([]models.PublicationScore, error)
	FacultyTopics(ctx context.Context, university string) ([]models.TopicCount, error)
	PublicationTopics(ctx context.Context, university string) ([]models.TopicCount, error)
	Spotlight(ctx context.Context, keyword string) (*models.Spotlight, error)
	Options(ctx context.Context) (*models.DropdownOptions, error)
	Defaults() models.DashboardDefaults
}

// FavoritesService is implemented by *dashboard.Favorites.
type FavoritesService interface {
	Add(ctx context.Context, name string) (*models.FavoritesResult, error)
	Remove(ctx context.Context, name string) (*models.FavoritesResult, error)
	Snapshot(ctx context.Context) (*models.FavoritesResult, error)
	LastKnownGood() *models.FavoritesResult
}

// Pinger is a store that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreCheck names one store probed by the readiness endpoint.
type StoreCheck struct {
	Name   string
	Pinger Pinger
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	widgets   WidgetService
	favorites FavoritesService
	stores    []StoreCheck
	wsHub     *ws.Hub
	config    *config.Config
	startTime time.Time
}

// NewHandler wires the handlers. wsHub may be nil, in which case /ws answers
// 503.
func NewHandler(widgets WidgetService, favorites FavoritesService, stores []StoreCheck, wsHub *ws.Hub, cfg *config.Config) *Handler {
	return &Handler{
		widgets:   widgets,
		favorites: favorites,
		stores:    stores,
		wsHub:     wsHub,
		config:    cfg,
		startTime: time.Now(),
	}
}

// queryContext bounds a request with the configured query timeout.
func (h *Handler) queryContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.config == nil || h.config.Dashboard.QueryTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.config.Dashboard.QueryTimeout)
}

func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts configured CORS origins. Browsers always send
// Origin, so a missing header is rejected.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}
	if h.config == nil {
		return true
	}
	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	logging.Warn().Str("origin", logging.SanitizeValue(origin)).Msg("WebSocket connection rejected: origin not allowed")
	return false
}
