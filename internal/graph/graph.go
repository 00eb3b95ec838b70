// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

// Package graph answers recommendation queries against the Neo4j
// faculty/keyword/publication graph.
package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/tomtom215/academicworld/internal/breaker"
	"github.com/tomtom215/academicworld/internal/config"
	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/metrics"
	"github.com/tomtom215/academicworld/internal/models"
)

const (
	facultyForKeywordsQuery = `MATCH (f:FACULTY)-->(k:KEYWORD)
WHERE k.name IN $keywords
RETURN DISTINCT f.name AS faculty_name
ORDER BY faculty_name`

	publicationsForKeywordsQuery = `MATCH (p:PUBLICATION)-->(k:KEYWORD)
WHERE k.name IN $keywords
RETURN DISTINCT p.title AS title
ORDER BY title`
)

// ErrNotConnected is returned after Close.
var ErrNotConnected = errors.New("graph store not connected")

// queryRunner executes a read query and returns the string column key of
// every record.
type queryRunner interface {
	columnValues(ctx context.Context, cypher string, params map[string]any, key string) ([]string, error)
	verify(ctx context.Context) error
	close(ctx context.Context) error
}

// Store runs recommendation traversals.
type Store struct {
	runner queryRunner
	cb     *breaker.Breaker
}

// Connect creates the driver and verifies connectivity. cb may be nil.
func Connect(ctx context.Context, cfg *config.GraphConfig, cb *breaker.Breaker) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	r := &sessionRunner{driver: driver, database: cfg.Database}
	if err := r.verify(ctx); err != nil {
		_ = driver.Close(context.Background())
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}
	logging.Info().Str("uri", cfg.URI).Str("database", cfg.Database).Msg("Connected to graph store")
	return &Store{runner: r, cb: cb}, nil
}

// FacultyForKeywords returns the distinct faculty linked to any of keywords,
// sorted by name. An empty keyword list returns an empty result without a
// round trip.
func (s *Store) FacultyForKeywords(ctx context.Context, keywords []string) ([]models.RecommendedFaculty, error) {
	names, err := s.traverse(ctx, "faculty_for_keywords", facultyForKeywordsQuery, keywords, "faculty_name")
	if err != nil {
		return nil, fmt.Errorf("recommend faculty: %w", err)
	}
	rows := make([]models.RecommendedFaculty, len(names))
	for i, n := range names {
		rows[i] = models.RecommendedFaculty{Name: n}
	}
	return rows, nil
}

// PublicationsForKeywords returns the distinct publications linked to any of
// keywords, sorted by title.
func (s *Store) PublicationsForKeywords(ctx context.Context, keywords []string) ([]models.RecommendedPublication, error) {
	titles, err := s.traverse(ctx, "publications_for_keywords", publicationsForKeywordsQuery, keywords, "title")
	if err != nil {
		return nil, fmt.Errorf("recommend publications: %w", err)
	}
	rows := make([]models.RecommendedPublication, len(titles))
	for i, t := range titles {
		rows[i] = models.RecommendedPublication{Title: t}
	}
	return rows, nil
}

// Ping verifies connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.runner == nil {
		return ErrNotConnected
	}
	return s.runner.verify(ctx)
}

// Close releases the driver.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.runner == nil {
		return nil
	}
	err := s.runner.close(ctx)
	s.runner = nil
	if err != nil {
		return fmt.Errorf("close neo4j driver: %w", err)
	}
	logging.Info().Msg("Graph store closed")
	return nil
}

func (s *Store) traverse(ctx context.Context, operation, cypher string, keywords []string, key string) ([]string, error) {
	if s == nil || s.runner == nil {
		return nil, ErrNotConnected
	}
	if len(keywords) == 0 {
		return []string{}, nil
	}

	start := time.Now()
	values, err := breaker.Do(s.cb, func() ([]string, error) {
		return s.runner.columnValues(ctx, cypher, map[string]any{"keywords": keywords}, key)
	})
	metrics.RecordStoreQuery(metrics.StoreGraph, operation, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}
