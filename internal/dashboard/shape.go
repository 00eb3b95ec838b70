// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package dashboard

import "github.com/tomtom215/academicworld/internal/models"

// orEmpty turns a nil slice into an empty one so it encodes as [].
func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

func noMatchSpotlight(keyword string) *models.Spotlight {
	return &models.Spotlight{
		Keyword:      keyword,
		Found:        false,
		Publications: []models.PublicationCitation{},
	}
}

func toFavorites(names []string) []models.FavoriteKeyword {
	favorites := make([]models.FavoriteKeyword, len(names))
	for i, n := range names {
		favorites[i] = models.FavoriteKeyword{Name: n}
	}
	return favorites
}

// cloneResult copies r deep enough that callers cannot mutate the cached
// last known good value.
func cloneResult(r *models.FavoritesResult) *models.FavoritesResult {
	if r == nil {
		return emptyResult()
	}
	return &models.FavoritesResult{
		Favorites:               append([]models.FavoriteKeyword{}, r.Favorites...),
		RecommendedFaculty:      append([]models.RecommendedFaculty{}, r.RecommendedFaculty...),
		RecommendedPublications: append([]models.RecommendedPublication{}, r.RecommendedPublications...),
		Stale:                   r.Stale,
		Warnings:                append([]string(nil), r.Warnings...),
	}
}

func emptyResult() *models.FavoritesResult {
	return &models.FavoritesResult{
		Favorites:               []models.FavoriteKeyword{},
		RecommendedFaculty:      []models.RecommendedFaculty{},
		RecommendedPublications: []models.RecommendedPublication{},
	}
}
