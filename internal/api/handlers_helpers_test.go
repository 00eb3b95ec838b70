// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func contextWithCleanup(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx, cancel
}

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte(`{"a":1}`))
	if a != generateETag([]byte(`{"a":1}`)) {
		t.Error("ETag is not deterministic")
	}
	if a == generateETag([]byte(`{"a":2}`)) {
		t.Error("different bodies produced the same ETag")
	}
	if got := generateETag(nil); got != "811c9dc5" {
		t.Errorf("generateETag(nil) = %q, want FNV offset basis 811c9dc5", got)
	}
}

func TestGetIntParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 10},
		{"?limit=15", 15},
		{"?limit=abc", 0},
		{"?limit=-5", -5},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
		if got := getIntParam(r, "limit", 10); got != tt.want {
			t.Errorf("getIntParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestGetStringParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?keyword=", nil)
	if got := getStringParam(r, "keyword", "data mining"); got != "" {
		t.Errorf("present but empty = %q, want empty", got)
	}
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	if got := getStringParam(r, "keyword", "data mining"); got != "data mining" {
		t.Errorf("absent = %q, want default", got)
	}
}

func TestRequireMethod(t *testing.T) {
	w := httptest.NewRecorder()
	if requireMethod(w, httptest.NewRequest(http.MethodPost, "/", nil), http.MethodGet) {
		t.Error("requireMethod() = true for POST, want false")
	}
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}
