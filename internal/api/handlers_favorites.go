// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/models"
	ws "github.com/tomtom215/academicworld/internal/websocket"
)

// Favorites returns the favorites table and its recommendations.
//
// @Summary Get favorites and recommendations
// @Tags favorites
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.FavoritesResult}
// @Failure 502 {object} models.APIResponse{data=models.FavoritesResult} "Stale snapshot"
// @Router /api/v1/favorites [get]
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result, err := h.favorites.Snapshot(r.Context())
	respondFavorites(w, result, err, start)
}

// AddFavorite handles POST /favorites with {"keyword": "..."}.
//
// @Summary Add a favorite keyword
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body FavoriteRequest true "Keyword to add"
// @Success 200 {object} models.APIResponse{data=models.FavoritesResult}
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 502 {object} models.APIResponse{data=models.FavoritesResult} "Stale snapshot"
// @Router /api/v1/favorites [post]
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, h.favorites.Add)
}

// RemoveFavorite handles DELETE /favorites with a JSON body or ?keyword=.
//
// @Summary Remove a favorite keyword
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body FavoriteRequest false "Keyword to remove"
// @Param keyword query string false "Keyword to remove"
// @Success 200 {object} models.APIResponse{data=models.FavoritesResult}
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 502 {object} models.APIResponse{data=models.FavoritesResult} "Stale snapshot"
// @Router /api/v1/favorites [delete]
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutateFavorites(w, r, h.favorites.Remove)
}

type favoritesMutation func(ctx context.Context, name string) (*models.FavoritesResult, error)

func (h *Handler) mutateFavorites(w http.ResponseWriter, r *http.Request, mutate favoritesMutation) {
	start := time.Now()
	req, err := decodeFavoriteRequest(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidJSON, "Invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	ctx := logging.ContextWithNewCorrelationID(r.Context())
	result, err := mutate(ctx, req.Keyword)
	respondFavorites(w, result, err, start)
}

// respondFavorites answers 502 with the stale snapshot when the coordinator
// failed closed, and the usual store error otherwise.
func respondFavorites(w http.ResponseWriter, result *models.FavoritesResult, err error, start time.Time) {
	switch {
	case err == nil:
		respondSuccess(w, result, start)
	case result != nil:
		respondErrorWithData(w, http.StatusBadGateway, ErrCodeStaleSnapshot,
			"Favorites could not be refreshed; showing the last known state", result, err)
	default:
		respondStoreError(w, err)
	}
}

// WebSocket upgrades the connection and subscribes it to favorites updates.
// The last known snapshot, if any, is sent first.
//
// @Summary Subscribe to favorites updates
// @Tags favorites
// @Produce json
// @Success 101 {string} string "Switching protocols"
// @Failure 503 {object} models.APIResponse "WebSocket unavailable"
// @Router /api/v1/ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavail, "WebSocket service unavailable", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	if snapshot := h.favorites.LastKnownGood(); snapshot != nil {
		client.Enqueue(ws.Message{Type: ws.MessageTypeFavoritesUpdated, Data: snapshot})
	}
	h.wsHub.Register <- client
	client.Start()
}
