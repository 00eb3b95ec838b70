// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package api

import (
	"context"
	"io"
	"sync"

	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/models"
)

func init() {
	logging.Init(logging.Config{Level: "disabled", Format: "json", Output: io.Discard})
}

type fakeWidgets struct {
	mu       sync.Mutex
	err      error
	calls    []string
	lastArg  interface{}
	spot     *models.Spotlight
	defaults models.DashboardDefaults
}

func newFakeWidgets() *fakeWidgets {
	return &fakeWidgets{defaults: models.DashboardDefaults{
		Limit:            10,
		Keyword:          "data mining",
		University:       "Stanford University",
		SpotlightKeyword: "genetic algorithm",
		AllowedLimits:    []int{5, 10, 15, 20, 25},
	}}
}

func (f *fakeWidgets) record(op string, arg interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	f.lastArg = arg
	return f.err
}

func (f *fakeWidgets) KeywordPublications(_ context.Context, limit int) ([]models.KeywordPublicationCount, error) {
	if err := f.record("keyword-publications", limit); err != nil {
		return nil, err
	}
	return []models.KeywordPublicationCount{{Keyword: "machine learning", PublicationCount: 6}}, nil
}

func (f *fakeWidgets) TopPublications(_ context.Context, keyword string) ([]models.PublicationScore, error) {
	if err := f.record("top-publications", keyword); err != nil {
		return nil, err
	}
	return []models.PublicationScore{{Title: "Mining Frequent Patterns", NumCitations: 540, Score: 0.9}}, nil
}

func (f *fakeWidgets) FacultyTopics(_ context.Context, university string) ([]models.TopicCount, error) {
	if err := f.record("faculty-topics", university); err != nil {
		return nil, err
	}
	return []models.TopicCount{{Keyword: "databases", Count: 2}}, nil
}

func (f *fakeWidgets) PublicationTopics(_ context.Context, university string) ([]models.TopicCount, error) {
	if err := f.record("publication-topics", university); err != nil {
		return nil, err
	}
	return []models.TopicCount{}, nil
}

func (f *fakeWidgets) Spotlight(_ context.Context, keyword string) (*models.Spotlight, error) {
	if err := f.record("spotlight", keyword); err != nil {
		return nil, err
	}
	if f.spot != nil {
		return f.spot, nil
	}
	return &models.Spotlight{Keyword: keyword, Publications: []models.PublicationCitation{}}, nil
}

func (f *fakeWidgets) Options(context.Context) (*models.DropdownOptions, error) {
	if err := f.record("options", nil); err != nil {
		return nil, err
	}
	return &models.DropdownOptions{
		Universities: []string{"Stanford University"},
		Keywords:     []string{"data mining"},
		Faculty:      []string{"Chen Wei"},
	}, nil
}

func (f *fakeWidgets) Defaults() models.DashboardDefaults {
	return f.defaults
}

func (f *fakeWidgets) lastCall() (string, interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return "", nil
	}
	return f.calls[len(f.calls)-1], f.lastArg
}

type fakeFavorites struct {
	mu       sync.Mutex
	result   *models.FavoritesResult
	err      error
	lastGood *models.FavoritesResult
	ops      []string
	names    []string
}

func (f *fakeFavorites) respond(op, name string) (*models.FavoritesResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, op)
	f.names = append(f.names, name)
	return f.result, f.err
}

func (f *fakeFavorites) Add(_ context.Context, name string) (*models.FavoritesResult, error) {
	return f.respond("add", name)
}

func (f *fakeFavorites) Remove(_ context.Context, name string) (*models.FavoritesResult, error) {
	return f.respond("remove", name)
}

func (f *fakeFavorites) Snapshot(context.Context) (*models.FavoritesResult, error) {
	return f.respond("snapshot", "")
}

func (f *fakeFavorites) LastKnownGood() *models.FavoritesResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastGood
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func sampleFavorites() *models.FavoritesResult {
	return &models.FavoritesResult{
		Favorites:               []models.FavoriteKeyword{{Name: "data mining"}},
		RecommendedFaculty:      []models.RecommendedFaculty{{Name: "Chen Wei"}},
		RecommendedPublications: []models.RecommendedPublication{{Title: "Mining Frequent Patterns"}},
	}
}
