// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package dashboard

import (
	"context"
	"sort"
	"sync"

	"github.com/tomtom215/academicworld/internal/models"
)

type fakeRelational struct {
	keywords     []models.KeywordPublicationCount
	topics       []models.TopicCount
	profile      *models.FacultyProfile
	publications []models.PublicationCitation
	names        []string
	err          error

	gotLimit     int
	gotFacultyID int64
	hadDeadline  bool
	nameReads    int
}

func (f *fakeRelational) TopKeywordsByPublications(ctx context.Context, limit int) ([]models.KeywordPublicationCount, error) {
	f.gotLimit = limit
	_, f.hadDeadline = ctx.Deadline()
	return f.keywords, f.err
}

func (f *fakeRelational) PublicationTopicsForUniversity(_ context.Context, _ string, limit int) ([]models.TopicCount, error) {
	f.gotLimit = limit
	return f.topics, f.err
}

func (f *fakeRelational) TopFacultyForKeyword(context.Context, string) (*models.FacultyProfile, error) {
	return f.profile, f.err
}

func (f *fakeRelational) TopCitedPublicationsForFaculty(_ context.Context, facultyID int64, limit int) ([]models.PublicationCitation, error) {
	f.gotFacultyID = facultyID
	f.gotLimit = limit
	return f.publications, f.err
}

func (f *fakeRelational) UniversityNames(context.Context) ([]string, error) {
	f.nameReads++
	return f.names, f.err
}

func (f *fakeRelational) KeywordNames(context.Context) ([]string, error) { return f.names, f.err }
func (f *fakeRelational) FacultyNames(context.Context) ([]string, error) { return f.names, f.err }

type fakeDocuments struct {
	publications []models.PublicationScore
	topics       []models.TopicCount
	err          error
}

func (f *fakeDocuments) TopPublicationsForKeyword(context.Context, string) ([]models.PublicationScore, error) {
	return f.publications, f.err
}

func (f *fakeDocuments) ResearchTopicsForUniversity(context.Context, string) ([]models.TopicCount, error) {
	return f.topics, f.err
}

// fakeFavoriteStore keeps rows in memory like the favorite_keyword table:
// duplicates allowed, read back distinct and sorted.
type fakeFavoriteStore struct {
	mu        sync.Mutex
	rows      []string
	mutateErr error
	readErr   error
	mutations int
}

func (f *fakeFavoriteStore) AddFavoriteKeyword(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.rows = append(f.rows, name)
	return nil
}

func (f *fakeFavoriteStore) RemoveFavoriteKeyword(_ context.Context, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations++
	if f.mutateErr != nil {
		return 0, f.mutateErr
	}
	kept := f.rows[:0]
	var removed int64
	for _, r := range f.rows {
		if r == name {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return removed, nil
}

func (f *fakeFavoriteStore) FavoriteKeywords(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	seen := map[string]bool{}
	names := []string{}
	for _, r := range f.rows {
		if !seen[r] {
			seen[r] = true
			names = append(names, r)
		}
	}
	sort.Strings(names)
	return names, nil
}

// fakeGraph links keywords to faculty and publications.
type fakeGraph struct {
	faculty      map[string][]string
	publications map[string][]string
	err          error
	calls        int
}

func (f *fakeGraph) FacultyForKeywords(_ context.Context, keywords []string) ([]models.RecommendedFaculty, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	rows := []models.RecommendedFaculty{}
	for _, n := range collect(f.faculty, keywords) {
		rows = append(rows, models.RecommendedFaculty{Name: n})
	}
	return rows, nil
}

func (f *fakeGraph) PublicationsForKeywords(_ context.Context, keywords []string) ([]models.RecommendedPublication, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	rows := []models.RecommendedPublication{}
	for _, t := range collect(f.publications, keywords) {
		rows = append(rows, models.RecommendedPublication{Title: t})
	}
	return rows, nil
}

func collect(links map[string][]string, keywords []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, k := range keywords {
		for _, v := range links[k] {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Strings(out)
	return out
}

type recordingNotifier struct {
	results []*models.FavoritesResult
}

func (n *recordingNotifier) BroadcastFavorites(r *models.FavoritesResult) {
	n.results = append(n.results, r)
}

func favoriteNames(r *models.FavoritesResult) []string {
	names := make([]string, len(r.Favorites))
	for i, f := range r.Favorites {
		names[i] = f.Name
	}
	return names
}
