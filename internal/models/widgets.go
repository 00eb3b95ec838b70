// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package models

// KeywordPublicationCount is one point of the keywords-by-publications scatter plot.
type KeywordPublicationCount struct {
	Keyword          string `json:"keyword"`
	PublicationCount int64  `json:"publication_count"`
}

// PublicationScore is one point of the most-cited-publications scatter plot.
// Score is the relevance of the selected keyword to the publication.
type PublicationScore struct {
	Title        string  `json:"title" bson:"title"`
	NumCitations int64   `json:"num_citations" bson:"numCitations"`
	Score        float64 `json:"score" bson:"score"`
}

// TopicCount is one slice of a research-topic pie chart.
type TopicCount struct {
	Keyword string `json:"keyword" bson:"_id"`
	Count   int64  `json:"count" bson:"count"`
}

// FacultyProfile is the professor with the most publications for a keyword.
type FacultyProfile struct {
	FacultyID        int64  `json:"faculty_id"`
	Name             string `json:"name"`
	PhotoURL         string `json:"photo_url"`
	PublicationCount int64  `json:"publication_count"`
}

// PublicationCitation is a row of the spotlight publications table.
type PublicationCitation struct {
	Title        string `json:"title"`
	NumCitations int64  `json:"num_citations"`
}

// Spotlight combines the professor panel and their most cited publications.
// Found is false when no faculty member has a publication with the keyword;
// Faculty is then nil and Publications empty.
type Spotlight struct {
	Keyword      string                `json:"keyword"`
	Found        bool                  `json:"found"`
	Faculty      *FacultyProfile       `json:"faculty"`
	Publications []PublicationCitation `json:"publications"`
}

// RecommendedFaculty is a faculty member linked to a favorite keyword.
type RecommendedFaculty struct {
	Name string `json:"faculty_name"`
}

// RecommendedPublication is a publication linked to a favorite keyword.
type RecommendedPublication struct {
	Title string `json:"title"`
}

// FavoritesResult is what every favorites operation returns: the current
// favorites set and the two recommendation tables derived from that same
// snapshot.
//
// InputValue is always empty so the client clears the keyword text box.
// Stale is set when a store failed and the lists are the last known good
// values rather than fresh ones. Warnings lists soft failures, such as a
// rejected insert, that did not stop the read back.
type FavoritesResult struct {
	Favorites               []FavoriteKeyword        `json:"favorites"`
	RecommendedFaculty      []RecommendedFaculty     `json:"recommended_faculty"`
	RecommendedPublications []RecommendedPublication `json:"recommended_publications"`
	InputValue              string                   `json:"input_value"`
	Stale                   bool                     `json:"stale,omitempty"`
	Warnings                []string                 `json:"warnings,omitempty"`
}

// DropdownOptions holds the option lists for the dashboard selectors.
type DropdownOptions struct {
	Universities []string `json:"universities"`
	Keywords     []string `json:"keywords"`
	Faculty      []string `json:"faculty"`
}

// DashboardDefaults are the initial values of each dashboard control.
type DashboardDefaults struct {
	Limit            int    `json:"limit"`
	Keyword          string `json:"keyword"`
	University       string `json:"university"`
	SpotlightKeyword string `json:"spotlight_keyword"`
	AllowedLimits    []int  `json:"allowed_limits"`
}
