// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/academicworld/internal/models"
)

func TestHealthLive(t *testing.T) {
	h := newTestHandler(newFakeWidgets(), &fakeFavorites{})

	w := httptest.NewRecorder()
	h.HealthLive(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		w := httptest.NewRecorder()
		h.HealthLive(w, httptest.NewRequest(method, "/api/v1/health/live", nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: status = %d, want 405", method, w.Code)
		}
	}
}

func TestHealthReady(t *testing.T) {
	tests := []struct {
		name       string
		stores     []StoreCheck
		wantStatus int
		wantStores map[string]string
	}{
		{
			name: "all stores up",
			stores: []StoreCheck{
				{Name: "relational", Pinger: fakePinger{}},
				{Name: "documents", Pinger: fakePinger{}},
				{Name: "graph", Pinger: fakePinger{}},
			},
			wantStatus: http.StatusOK,
			wantStores: map[string]string{"relational": "ok", "documents": "ok", "graph": "ok"},
		},
		{
			name: "graph down",
			stores: []StoreCheck{
				{Name: "relational", Pinger: fakePinger{}},
				{Name: "graph", Pinger: fakePinger{err: errors.New("connection refused")}},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantStores: map[string]string{"relational": "ok", "graph": "unreachable"},
		},
		{
			name:       "store missing",
			stores:     []StoreCheck{{Name: "documents"}},
			wantStatus: http.StatusServiceUnavailable,
			wantStores: map[string]string{"documents": "not_configured"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(newFakeWidgets(), &fakeFavorites{}, tt.stores...)

			w := httptest.NewRecorder()
			h.HealthReady(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var health models.HealthStatus
			if err := json.Unmarshal(decodeEnvelope(t, w).Data, &health); err != nil {
				t.Fatalf("decode: %v", err)
			}
			for name, want := range tt.wantStores {
				if health.Stores[name] != want {
					t.Errorf("stores[%s] = %q, want %q", name, health.Stores[name], want)
				}
			}
		})
	}
}
