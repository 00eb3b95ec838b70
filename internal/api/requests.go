// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// maxBodyBytes bounds favorites request bodies.
const maxBodyBytes = 4 << 10

// KeywordPublicationsRequest is the widget 1 query.
type KeywordPublicationsRequest struct {
	Limit int `query:"limit" validate:"oneof=5 10 15 20 25"`
}

// KeywordRequest is the query of the keyword-driven widgets.
type KeywordRequest struct {
	Keyword string `query:"keyword" validate:"notblank,max=255"`
}

// UniversityRequest is the query of the university-driven widgets.
type UniversityRequest struct {
	University string `query:"university" validate:"notblank,max=255"`
}

// FavoriteRequest is the favorites mutation body. A blank keyword is valid
// and leaves the set unchanged.
type FavoriteRequest struct {
	Keyword string `json:"keyword" validate:"max=255"`
}

// decodeFavoriteRequest reads the keyword from the JSON body, falling back
// to the keyword query parameter. An empty body is not an error.
func decodeFavoriteRequest(w http.ResponseWriter, r *http.Request) (FavoriteRequest, error) {
	var req FavoriteRequest
	if r.Body != nil {
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, err
		}
	}
	if req.Keyword == "" {
		req.Keyword = r.URL.Query().Get("keyword")
	}
	return req, nil
}
