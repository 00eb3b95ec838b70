// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package documents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/academicworld/internal/breaker"
	"github.com/tomtom215/academicworld/internal/config"
	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/metrics"
	"github.com/tomtom215/academicworld/internal/models"
)

// Collection names.
const (
	PublicationsCollection = "publications"
	FacultyCollection      = "faculty"
)

// resultLimit caps both document widgets.
const resultLimit = 10

// ErrNotConnected is returned after Close.
var ErrNotConnected = errors.New("document store not connected")

// Store wraps one MongoDB database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	cb     *breaker.Breaker
}

// Connect dials MongoDB and verifies the primary answers. cb may be nil.
func Connect(ctx context.Context, cfg *config.DocumentsConfig, cb *breaker.Breaker) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetAppName("academicworld")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logging.Info().Str("database", cfg.Database).Msg("Connected to document store")
	return &Store{client: client, db: client.Database(cfg.Database), cb: cb}, nil
}

// NewWithDatabase wraps an already connected database handle. Close is a
// no-op for stores built this way; the owner of db disconnects it.
func NewWithDatabase(db *mongo.Database, cb *breaker.Breaker) *Store {
	return &Store{db: db, cb: cb}
}

// Ping checks that the primary answers.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return ErrNotConnected
	}
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// Close disconnects the client it owns.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	if err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	logging.Info().Msg("Document store closed")
	return nil
}

// TopPublicationsForKeyword returns the ten most cited publications tagged
// keyword, each with the keyword's relevance score.
func (s *Store) TopPublicationsForKeyword(ctx context.Context, keyword string) ([]models.PublicationScore, error) {
	rows, err := aggregate[models.PublicationScore](ctx, s, PublicationsCollection,
		"top_publications_for_keyword", topPublicationsPipeline(keyword, resultLimit))
	if err != nil {
		return nil, fmt.Errorf("aggregate top publications: %w", err)
	}
	return rows, nil
}

// ResearchTopicsForUniversity counts keywords over the faculty of university.
func (s *Store) ResearchTopicsForUniversity(ctx context.Context, university string) ([]models.TopicCount, error) {
	rows, err := aggregate[models.TopicCount](ctx, s, FacultyCollection,
		"research_topics_for_university", facultyTopicsPipeline(university, resultLimit))
	if err != nil {
		return nil, fmt.Errorf("aggregate faculty topics: %w", err)
	}
	return rows, nil
}

// aggregate runs pipeline against collection and decodes every document into
// T. The result is never nil.
func aggregate[T any](ctx context.Context, s *Store, collection, operation string, pipeline mongo.Pipeline) ([]T, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotConnected
	}

	start := time.Now()
	rows, err := breaker.Do(s.cb, func() ([]T, error) {
		cursor, err := s.db.Collection(collection).Aggregate(ctx, pipeline)
		if err != nil {
			return nil, err
		}
		results := make([]T, 0)
		if err := cursor.All(ctx, &results); err != nil {
			return nil, err
		}
		return results, nil
	})
	metrics.RecordStoreQuery(metrics.StoreDocuments, operation, time.Since(start), err)
	return rows, err
}
