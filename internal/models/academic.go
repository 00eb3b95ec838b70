// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package models

// University is a row of the university table.
type University struct {
	Name string `json:"name"`
}

// Keyword is a research keyword. Name is unique across all three stores.
type Keyword struct {
	Name string `json:"name"`
}

// Faculty is a faculty member as stored in the relational faculty table.
type Faculty struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// Publication is a row of the publication table.
type Publication struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	NumCitations int64  `json:"num_citations"`
}

// FavoriteKeyword is one entry of the global favorites set. The JSON key
// matches the column header shown by the favorites table widget.
type FavoriteKeyword struct {
	Name string `json:"Keyword"`
}
