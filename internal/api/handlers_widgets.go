// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"net/http"
	"time"
)

// DashboardOptions returns the dropdown option lists.
//
// @Summary Get dropdown options
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DropdownOptions}
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /api/v1/dashboard/options [get]
func (h *Handler) DashboardOptions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := h.queryContext(r)
	defer cancel()

	opts, err := h.widgets.Options(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, opts, start)
}

// DashboardDefaults returns the initial widget inputs.
//
// @Summary Get initial widget inputs
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DashboardDefaults}
// @Router /api/v1/dashboard/defaults [get]
func (h *Handler) DashboardDefaults(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.widgets.Defaults(), time.Now())
}

// KeywordPublications serves widget 1.
//
// @Summary Top keywords by publication count
// @Tags widgets
// @Produce json
// @Param limit query int false "Row count (5, 10, 15, 20 or 25)"
// @Success 200 {object} models.APIResponse{data=[]models.KeywordPublicationCount}
// @Failure 400 {object} models.APIResponse "Invalid limit"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /api/v1/widgets/keyword-publications [get]
func (h *Handler) KeywordPublications(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := KeywordPublicationsRequest{
		Limit: getIntParam(r, "limit", h.widgets.Defaults().Limit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	rows, err := h.widgets.KeywordPublications(ctx, req.Limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, rows, start)
}

// TopPublications serves widget 2.
//
// @Summary Top publications for a keyword
// @Tags widgets
// @Produce json
// @Param keyword query string false "Keyword name"
// @Success 200 {object} models.APIResponse{data=[]models.PublicationScore}
// @Failure 400 {object} models.APIResponse "Invalid keyword"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /api/v1/widgets/top-publications [get]
func (h *Handler) TopPublications(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := KeywordRequest{Keyword: getStringParam(r, "keyword", h.widgets.Defaults().Keyword)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	rows, err := h.widgets.TopPublications(ctx, req.Keyword)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, rows, start)
}

// FacultyTopics serves widget 3.
//
// @Summary Faculty research topics for a university
// @Tags widgets
// @Produce json
// @Param university query string false "University name"
// @Success 200 {object} models.APIResponse{data=[]models.TopicCount}
// @Failure 400 {object} models.APIResponse "Invalid university"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /api/v1/widgets/faculty-topics [get]
func (h *Handler) FacultyTopics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := UniversityRequest{University: getStringParam(r, "university", h.widgets.Defaults().University)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	rows, err := h.widgets.FacultyTopics(ctx, req.University)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, rows, start)
}

// PublicationTopics serves widget 4.
//
// @Summary Publication topics for a university
// @Tags widgets
// @Produce json
// @Param university query string false "University name"
// @Success 200 {object} models.APIResponse{data=[]models.TopicCount}
// @Failure 400 {object} models.APIResponse "Invalid university"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /api/v1/widgets/publication-topics [get]
func (h *Handler) PublicationTopics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := UniversityRequest{University: getStringParam(r, "university", h.widgets.Defaults().University)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	rows, err := h.widgets.PublicationTopics(ctx, req.University)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, rows, start)
}

// Spotlight serves widgets 5 and 6. A keyword nobody works on is a 200 with
// found=false.
//
// @Summary Faculty and publication spotlight for a keyword
// @Tags widgets
// @Produce json
// @Param keyword query string false "Keyword name"
// @Success 200 {object} models.APIResponse{data=models.Spotlight}
// @Failure 400 {object} models.APIResponse "Invalid keyword"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /api/v1/widgets/spotlight [get]
func (h *Handler) Spotlight(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := KeywordRequest{Keyword: getStringParam(r, "keyword", h.widgets.Defaults().SpotlightKeyword)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	spot, err := h.widgets.Spotlight(ctx, req.Keyword)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, spot, start)
}
