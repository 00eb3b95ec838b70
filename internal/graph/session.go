// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// sessionRunner opens one read session per query.
type sessionRunner struct {
	driver   neo4j.DriverWithContext
	database string
}

func (r *sessionRunner) columnValues(ctx context.Context, cypher string, params map[string]any, key string) ([]string, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: r.database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0)
	for result.Next(ctx) {
		raw, ok := result.Record().Get(key)
		if !ok {
			return nil, fmt.Errorf("record has no column %q", key)
		}
		// Nodes without the property come back as nil; skip them.
		s, ok := raw.(string)
		if !ok {
			continue
		}
		values = append(values, s)
	}
	if err := result.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func (r *sessionRunner) verify(ctx context.Context) error {
	return r.driver.VerifyConnectivity(ctx)
}

func (r *sessionRunner) close(ctx context.Context) error {
	return r.driver.Close(ctx)
}
