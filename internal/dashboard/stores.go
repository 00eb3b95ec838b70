// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package dashboard

import (
	"context"

	"github.com/tomtom215/academicworld/internal/models"
)

// RelationalStore is the read side of the relational database.
// Implemented by *database.DB.
type RelationalStore interface {
	TopKeywordsByPublications(ctx context.Context, limit int) ([]models.KeywordPublicationCount, error)
	PublicationTopicsForUniversity(ctx context.Context, university string, limit int) ([]models.TopicCount, error)
	TopFacultyForKeyword(ctx context.Context, keyword string) (*models.FacultyProfile, error)
	TopCitedPublicationsForFaculty(ctx context.Context, facultyID int64, limit int) ([]models.PublicationCitation, error)
	UniversityNames(ctx context.Context) ([]string, error)
	KeywordNames(ctx context.Context) ([]string, error)
	FacultyNames(ctx context.Context) ([]string, error)
}

// DocumentStore serves the aggregation-backed widgets.
// Implemented by *documents.Store.
type DocumentStore interface {
	TopPublicationsForKeyword(ctx context.Context, keyword string) ([]models.PublicationScore, error)
	ResearchTopicsForUniversity(ctx context.Context, university string) ([]models.TopicCount, error)
}

// FavoriteStore is the mutable favorites table.
// Implemented by *database.DB.
type FavoriteStore interface {
	AddFavoriteKeyword(ctx context.Context, name string) error
	RemoveFavoriteKeyword(ctx context.Context, name string) (int64, error)
	FavoriteKeywords(ctx context.Context) ([]string, error)
}

// RecommendationStore traverses keywords to related faculty and publications.
// Implemented by *graph.Store.
type RecommendationStore interface {
	FacultyForKeywords(ctx context.Context, keywords []string) ([]models.RecommendedFaculty, error)
	PublicationsForKeywords(ctx context.Context, keywords []string) ([]models.RecommendedPublication, error)
}

// Notifier is told about every fresh favorites result.
// Implemented by *websocket.Hub.
type Notifier interface {
	BroadcastFavorites(result *models.FavoritesResult)
}
