// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultNeo4jImage is the Neo4j image used by NewNeo4jContainer.
	DefaultNeo4jImage = "neo4j:5-community"

	// Neo4jUsername and Neo4jPassword are the container credentials.
	Neo4jUsername = "neo4j"
	Neo4jPassword = "academicworld-test"

	// Neo4jDatabase is the only database of the community edition.
	Neo4jDatabase = "neo4j"

	boltPort = "7687/tcp"
)

// Neo4jContainer is a running Neo4j instance.
type Neo4jContainer struct {
	testcontainers.Container
	URI string
}

// NewNeo4jContainer starts Neo4j and waits for the bolt listener.
func NewNeo4jContainer(ctx context.Context) (*Neo4jContainer, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        DefaultNeo4jImage,
			ExposedPorts: []string{boltPort},
			Env: map[string]string{
				"NEO4J_AUTH": Neo4jUsername + "/" + Neo4jPassword,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(boltPort),
				wait.ForLog("Started."),
			).WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create neo4j container: %w", err)
	}

	uri, err := endpoint(ctx, container, "neo4j", boltPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, err
	}
	return &Neo4jContainer{Container: container, URI: uri}, nil
}

// graphSeed links faculty and publications to keywords, matching the
// document seed.
var graphSeed = []string{
	`CREATE (k1:KEYWORD {name: 'machine learning'}), (k2:KEYWORD {name: 'data mining'}),
	        (k3:KEYWORD {name: 'databases'}), (k4:KEYWORD {name: 'genetic algorithm'}),
	        (k5:KEYWORD {name: 'computer vision'})
	 CREATE (a:FACULTY {name: 'Alice Moreau'}), (c:FACULTY {name: 'Chen Wei'}), (d:FACULTY {name: 'Dana Okafor'})
	 CREATE (a)-[:INTERESTED_IN]->(k1), (a)-[:INTERESTED_IN]->(k5),
	        (c)-[:INTERESTED_IN]->(k4), (c)-[:INTERESTED_IN]->(k1),
	        (d)-[:INTERESTED_IN]->(k3), (d)-[:INTERESTED_IN]->(k2)
	 CREATE (p1:PUBLICATION {title: 'Deep Learning for Image Recognition'}),
	        (p2:PUBLICATION {title: 'Mining Frequent Patterns'}),
	        (p3:PUBLICATION {title: 'Scalable Query Processing'}),
	        (p4:PUBLICATION {title: 'Evolving Neural Networks'})
	 CREATE (p1)-[:LABEL_BY]->(k1), (p1)-[:LABEL_BY]->(k5),
	        (p2)-[:LABEL_BY]->(k2), (p2)-[:LABEL_BY]->(k3),
	        (p3)-[:LABEL_BY]->(k3),
	        (p4)-[:LABEL_BY]->(k4), (p4)-[:LABEL_BY]->(k1)`,
}

// SeedGraph writes the academic graph through a fresh driver.
func SeedGraph(ctx context.Context, uri string) error {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(Neo4jUsername, Neo4jPassword, ""))
	if err != nil {
		return fmt.Errorf("create neo4j driver: %w", err)
	}
	defer driver.Close(ctx) //nolint:errcheck

	session := driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: Neo4jDatabase,
	})
	defer session.Close(ctx) //nolint:errcheck

	for _, stmt := range graphSeed {
		result, err := session.Run(ctx, stmt, nil)
		if err != nil {
			return fmt.Errorf("seed graph: %w", err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return fmt.Errorf("seed graph: %w", err)
		}
	}
	return nil
}
