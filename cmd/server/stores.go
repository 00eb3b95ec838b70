// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/academicworld/internal/api"
	"github.com/tomtom215/academicworld/internal/breaker"
	"github.com/tomtom215/academicworld/internal/config"
	"github.com/tomtom215/academicworld/internal/dashboard"
	"github.com/tomtom215/academicworld/internal/database"
	"github.com/tomtom215/academicworld/internal/documents"
	"github.com/tomtom215/academicworld/internal/graph"
	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/metrics"
	ws "github.com/tomtom215/academicworld/internal/websocket"
)

// connectTimeout bounds each store's initial handshake.
const connectTimeout = 30 * time.Second

// stores holds the three open store handles.
type stores struct {
	db    *database.DB
	docs  *documents.Store
	graph *graph.Store
}

// openStores connects every store behind its own breaker. On failure the
// stores already opened are closed.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	s := &stores{}

	db, err := database.New(&cfg.Database, breaker.New(metrics.StoreRelational, cfg.Breaker))
	if err != nil {
		return nil, fmt.Errorf("open relational store: %w", err)
	}
	s.db = db
	logging.Info().Str("driver", db.Driver()).Msg("Relational store ready")

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	docs, err := documents.Connect(connectCtx, &cfg.Documents, breaker.New(metrics.StoreDocuments, cfg.Breaker))
	if err != nil {
		s.close()
		return nil, fmt.Errorf("open document store: %w", err)
	}
	s.docs = docs
	logging.Info().Str("database", cfg.Documents.Database).Msg("Document store ready")

	g, err := graph.Connect(connectCtx, &cfg.Graph, breaker.New(metrics.StoreGraph, cfg.Breaker))
	if err != nil {
		s.close()
		return nil, fmt.Errorf("open graph store: %w", err)
	}
	s.graph = g
	logging.Info().Str("uri", cfg.Graph.URI).Msg("Graph store ready")

	return s, nil
}

// checks lists the stores for the readiness endpoint.
func (s *stores) checks() []api.StoreCheck {
	return []api.StoreCheck{
		{Name: metrics.StoreRelational, Pinger: s.db},
		{Name: metrics.StoreDocuments, Pinger: s.docs},
		{Name: metrics.StoreGraph, Pinger: s.graph},
	}
}

func (s *stores) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.graph != nil {
		if err := s.graph.Close(ctx); err != nil {
			logging.Error().Err(err).Msg("Error closing graph store")
		}
	}
	if s.docs != nil {
		if err := s.docs.Close(ctx); err != nil {
			logging.Error().Err(err).Msg("Error closing document store")
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing relational store")
		}
	}
}

var (
	_ dashboard.RelationalStore     = (*database.DB)(nil)
	_ dashboard.FavoriteStore       = (*database.DB)(nil)
	_ dashboard.DocumentStore       = (*documents.Store)(nil)
	_ dashboard.RecommendationStore = (*graph.Store)(nil)
	_ dashboard.Notifier            = (*ws.Hub)(nil)
)
