// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/metrics"
	"github.com/tomtom215/academicworld/internal/models"
)

// Mutation names used in logs and metrics.
const (
	OperationAdd    = "add"
	OperationRemove = "remove"
)

// Favorites coordinates the favorites table and the recommendation tables
// derived from it.
//
// Every call ends with a read back of the whole favorites set and two graph
// traversals over that same snapshot, so the three lists returned are always
// consistent with each other. The set is global and no lock spans the
// stores; under concurrent mutations a caller may see a snapshot that already
// includes another caller's change.
//
// When a read fails, the result is the last known good one, unchanged apart
// from being marked Stale, together with the error. Its three lists still
// belong to one snapshot.
type Favorites struct {
	store    FavoriteStore
	graph    RecommendationStore
	timeout  time.Duration
	logger   zerolog.Logger
	notifier Notifier

	mu       sync.Mutex
	lastGood *models.FavoritesResult
}

// NewFavorites creates the coordinator. timeout bounds each call; zero means
// the caller's context alone.
func NewFavorites(store FavoriteStore, graph RecommendationStore, timeout time.Duration) *Favorites {
	return &Favorites{
		store:   store,
		graph:   graph,
		timeout: timeout,
		logger:  logging.WithComponent("favorites"),
	}
}

// SetNotifier registers the receiver of results that follow an applied
// mutation. Call before serving.
func (f *Favorites) SetNotifier(n Notifier) {
	f.notifier = n
}

// Add stores name as a favorite keyword and returns the refreshed tables.
// Surrounding whitespace is trimmed; an empty name only refreshes.
func (f *Favorites) Add(ctx context.Context, name string) (*models.FavoritesResult, error) {
	return f.apply(ctx, OperationAdd, name)
}

// Remove deletes every favorite equal to name, ignoring surrounding
// whitespace, and returns the refreshed tables.
func (f *Favorites) Remove(ctx context.Context, name string) (*models.FavoritesResult, error) {
	return f.apply(ctx, OperationRemove, name)
}

// Snapshot returns the current tables without changing anything.
func (f *Favorites) Snapshot(ctx context.Context) (*models.FavoritesResult, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()
	return f.refresh(ctx, nil)
}

// LastKnownGood returns a copy of the last fresh result, or nil before the
// first one.
func (f *Favorites) LastKnownGood() *models.FavoritesResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastGood == nil {
		return nil
	}
	return cloneResult(f.lastGood)
}

func (f *Favorites) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, f.timeout)
}

func (f *Favorites) apply(ctx context.Context, operation, name string) (*models.FavoritesResult, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	name = strings.TrimSpace(name)
	var warnings []string
	applied := false

	if name == "" {
		metrics.RecordFavoritesMutation(operation, "skipped")
	} else if err := f.mutate(ctx, operation, name); err != nil {
		metrics.RecordFavoritesMutation(operation, "failed")
		logging.Ctx(ctx).Warn().Err(err).
			Str("operation", operation).
			Str("keyword", logging.SanitizeValue(name)).
			Msg("Favorite keyword mutation failed")
		warnings = append(warnings, fmt.Sprintf("%s %q failed: %v", operation, name, err))
	} else {
		metrics.RecordFavoritesMutation(operation, "applied")
		applied = true
	}

	result, err := f.refresh(ctx, warnings)
	if err == nil && applied && f.notifier != nil {
		f.notifier.BroadcastFavorites(cloneResult(result))
	}
	return result, err
}

func (f *Favorites) mutate(ctx context.Context, operation, name string) error {
	switch operation {
	case OperationAdd:
		return f.store.AddFavoriteKeyword(ctx, name)
	case OperationRemove:
		removed, err := f.store.RemoveFavoriteKeyword(ctx, name)
		if err == nil && removed == 0 {
			f.logger.Debug().Str("keyword", logging.SanitizeValue(name)).Msg("Remove matched no favorites")
		}
		return err
	default:
		return fmt.Errorf("unknown favorites operation %q", operation)
	}
}

// refresh reads the favorites set back and derives both recommendation
// tables from that snapshot.
func (f *Favorites) refresh(ctx context.Context, warnings []string) (*models.FavoritesResult, error) {
	names, err := f.store.FavoriteKeywords(ctx)
	if err != nil {
		return f.stale(warnings), fmt.Errorf("read favorites: %w", err)
	}
	names = orEmpty(names)

	result := &models.FavoritesResult{
		Favorites:               toFavorites(names),
		RecommendedFaculty:      []models.RecommendedFaculty{},
		RecommendedPublications: []models.RecommendedPublication{},
		Warnings:                warnings,
	}

	if len(names) > 0 {
		faculty, err := f.graph.FacultyForKeywords(ctx, names)
		if err != nil {
			return f.stale(warnings), fmt.Errorf("recommend faculty: %w", err)
		}
		pubs, err := f.graph.PublicationsForKeywords(ctx, names)
		if err != nil {
			return f.stale(warnings), fmt.Errorf("recommend publications: %w", err)
		}
		result.RecommendedFaculty = orEmpty(faculty)
		result.RecommendedPublications = orEmpty(pubs)
	}

	f.mu.Lock()
	f.lastGood = cloneResult(result)
	f.lastGood.Warnings = nil
	f.mu.Unlock()
	return result, nil
}

// stale returns the last known good result, or an empty one, marked Stale.
// A freshly read favorites set is never mixed in: it would not match the
// cached recommendations.
func (f *Favorites) stale(warnings []string) *models.FavoritesResult {
	f.mu.Lock()
	result := cloneResult(f.lastGood)
	f.mu.Unlock()

	result.Stale = true
	result.Warnings = warnings
	result.InputValue = ""
	return result
}
