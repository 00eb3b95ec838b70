// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/models"
)

// HealthLive reports that the process is serving.
//
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady pings every store and answers 503 unless all respond.
//
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "A store is unreachable"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	health := models.HealthStatus{Status: "ready", Stores: make(map[string]string, len(h.stores))}
	for _, s := range h.stores {
		if s.Pinger == nil {
			health.Stores[s.Name] = "not_configured"
			health.Status = "not_ready"
			continue
		}
		if err := s.Pinger.Ping(ctx); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Str("store", s.Name).Msg("Readiness check failed")
			health.Stores[s.Name] = "unreachable"
			health.Status = "not_ready"
			continue
		}
		health.Stores[s.Name] = "ok"
	}

	status := http.StatusOK
	if health.Status != "ready" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, &models.APIResponse{
		Status:   health.Status,
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
