// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/academicworld/internal/breaker"
	"github.com/tomtom215/academicworld/internal/config"
	"github.com/tomtom215/academicworld/internal/dashboard"
	"github.com/tomtom215/academicworld/internal/models"
)

type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Dashboard.QueryTimeout = time.Second
	cfg.Security.CORSOrigins = []string{"http://dash.example"}
	return cfg
}

func newTestHandler(widgets *fakeWidgets, favorites *fakeFavorites, stores ...StoreCheck) *Handler {
	return NewHandler(widgets, favorites, stores, nil, testConfig())
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func TestWidgetHandlers_Defaults(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		handler func(h *Handler) http.HandlerFunc
		wantOp  string
		wantArg interface{}
	}{
		{"keyword publications", "/api/v1/widgets/keyword-publications", func(h *Handler) http.HandlerFunc { return h.KeywordPublications }, "keyword-publications", 10},
		{"top publications", "/api/v1/widgets/top-publications", func(h *Handler) http.HandlerFunc { return h.TopPublications }, "top-publications", "data mining"},
		{"faculty topics", "/api/v1/widgets/faculty-topics", func(h *Handler) http.HandlerFunc { return h.FacultyTopics }, "faculty-topics", "Stanford University"},
		{"publication topics", "/api/v1/widgets/publication-topics", func(h *Handler) http.HandlerFunc { return h.PublicationTopics }, "publication-topics", "Stanford University"},
		{"spotlight", "/api/v1/widgets/spotlight", func(h *Handler) http.HandlerFunc { return h.Spotlight }, "spotlight", "genetic algorithm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			widgets := newFakeWidgets()
			h := newTestHandler(widgets, &fakeFavorites{})

			w := httptest.NewRecorder()
			tt.handler(h)(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
			}
			op, arg := widgets.lastCall()
			if op != tt.wantOp || arg != tt.wantArg {
				t.Errorf("called %s(%v), want %s(%v)", op, arg, tt.wantOp, tt.wantArg)
			}
			if env := decodeEnvelope(t, w); env.Status != "success" {
				t.Errorf("status field = %q, want success", env.Status)
			}
			if w.Header().Get("ETag") == "" {
				t.Error("missing ETag header")
			}
		})
	}
}

func TestWidgetHandlers_Validation(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		handler func(h *Handler) http.HandlerFunc
		field   string
	}{
		{"limit off the slider", "/w?limit=12", func(h *Handler) http.HandlerFunc { return h.KeywordPublications }, "limit"},
		{"limit not a number", "/w?limit=ten", func(h *Handler) http.HandlerFunc { return h.KeywordPublications }, "limit"},
		{"blank keyword", "/w?keyword=%20%20", func(h *Handler) http.HandlerFunc { return h.TopPublications }, "keyword"},
		{"empty university", "/w?university=", func(h *Handler) http.HandlerFunc { return h.FacultyTopics }, "university"},
		{"long university", "/w?university=" + strings.Repeat("u", 256), func(h *Handler) http.HandlerFunc { return h.PublicationTopics }, "university"},
		{"empty spotlight keyword", "/w?keyword=", func(h *Handler) http.HandlerFunc { return h.Spotlight }, "keyword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			widgets := newFakeWidgets()
			h := newTestHandler(widgets, &fakeFavorites{})

			w := httptest.NewRecorder()
			tt.handler(h)(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			env := decodeEnvelope(t, w)
			if env.Error == nil || env.Error.Code != ErrCodeValidation {
				t.Fatalf("error = %+v, want %s", env.Error, ErrCodeValidation)
			}
			if env.Error.Details["field"] != tt.field {
				t.Errorf("details.field = %v, want %s", env.Error.Details["field"], tt.field)
			}
			if op, _ := widgets.lastCall(); op != "" {
				t.Errorf("store called (%s) despite invalid input", op)
			}
		})
	}
}

func TestKeywordPublications_AllowedLimits(t *testing.T) {
	for _, limit := range []int{5, 10, 15, 20, 25} {
		widgets := newFakeWidgets()
		h := newTestHandler(widgets, &fakeFavorites{})

		w := httptest.NewRecorder()
		h.KeywordPublications(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/w?limit=%d", limit), nil))

		if w.Code != http.StatusOK {
			t.Errorf("limit %d: status = %d, want 200", limit, w.Code)
		}
		if _, arg := widgets.lastCall(); arg != limit {
			t.Errorf("limit %d: store got %v", limit, arg)
		}
	}
}

func TestWidgetHandlers_StoreErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"breaker open", fmt.Errorf("graph: %w", breaker.ErrStoreUnavailable), http.StatusServiceUnavailable, ErrCodeStoreUnavailable},
		{"deadline", fmt.Errorf("aggregate: %w", context.DeadlineExceeded), http.StatusServiceUnavailable, ErrCodeStoreUnavailable},
		{"invalid limit", dashboard.ErrInvalidLimit, http.StatusBadRequest, ErrCodeValidation},
		{"query failure", errors.New("syntax error"), http.StatusInternalServerError, ErrCodeQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			widgets := newFakeWidgets()
			widgets.err = tt.err
			h := newTestHandler(widgets, &fakeFavorites{})

			w := httptest.NewRecorder()
			h.FacultyTopics(w, httptest.NewRequest(http.MethodGet, "/w?university=MIT", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if env := decodeEnvelope(t, w); env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestSpotlight_NoMatchIsOK(t *testing.T) {
	widgets := newFakeWidgets()
	h := newTestHandler(widgets, &fakeFavorites{})

	w := httptest.NewRecorder()
	h.Spotlight(w, httptest.NewRequest(http.MethodGet, "/w?keyword=alchemy", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var spot models.Spotlight
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &spot); err != nil {
		t.Fatalf("decode spotlight: %v", err)
	}
	if spot.Found || spot.Faculty != nil || spot.Keyword != "alchemy" {
		t.Errorf("spotlight = %+v, want no-match for alchemy", spot)
	}
}

func TestDashboardEndpoints(t *testing.T) {
	widgets := newFakeWidgets()
	h := newTestHandler(widgets, &fakeFavorites{})

	w := httptest.NewRecorder()
	h.DashboardDefaults(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/defaults", nil))
	var defaults models.DashboardDefaults
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &defaults); err != nil {
		t.Fatalf("decode defaults: %v", err)
	}
	if defaults.Limit != 10 || defaults.SpotlightKeyword != "genetic algorithm" || len(defaults.AllowedLimits) != 5 {
		t.Errorf("defaults = %+v", defaults)
	}

	w = httptest.NewRecorder()
	h.DashboardOptions(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/options", nil))
	var opts models.DropdownOptions
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &opts); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if len(opts.Universities) != 1 || opts.Faculty[0] != "Chen Wei" {
		t.Errorf("options = %+v", opts)
	}

	widgets.err = breaker.ErrStoreUnavailable
	w = httptest.NewRecorder()
	h.DashboardOptions(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/options", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("options with open breaker: status = %d, want 503", w.Code)
	}
}
