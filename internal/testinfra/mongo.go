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

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/academicworld/internal/documents"
)

const (
	// DefaultMongoImage is the MongoDB image used by NewMongoContainer.
	DefaultMongoImage = "mongo:7"

	mongoPort = "27017/tcp"
)

// MongoContainer is a running MongoDB instance.
type MongoContainer struct {
	testcontainers.Container
	URI string
}

// NewMongoContainer starts MongoDB and waits for it to accept connections.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        DefaultMongoImage,
			ExposedPorts: []string{mongoPort},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(mongoPort),
				wait.ForLog("Waiting for connections"),
			).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create mongo container: %w", err)
	}

	uri, err := endpoint(ctx, container, "mongodb", mongoPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, err
	}
	return &MongoContainer{Container: container, URI: uri}, nil
}

// SeedDocuments loads the publications and faculty collections.
func SeedDocuments(ctx context.Context, db *mongo.Database) error {
	publications := []interface{}{
		publicationDoc(1, "Deep Learning for Image Recognition", 1200, kw("machine learning", 0.9), kw("computer vision", 0.8)),
		publicationDoc(2, "Mining Frequent Patterns", 540, kw("data mining", 0.95), kw("databases", 0.4)),
		publicationDoc(3, "Scalable Query Processing", 310, kw("databases", 0.85)),
		publicationDoc(4, "Evolving Neural Networks", 880, kw("genetic algorithm", 0.7), kw("machine learning", 0.6)),
		publicationDoc(5, "Clustering at Scale", 120, kw("data mining", 0.6), kw("machine learning", 0.5)),
	}
	if _, err := db.Collection(documents.PublicationsCollection).InsertMany(ctx, publications); err != nil {
		return fmt.Errorf("seed publications: %w", err)
	}

	faculty := []interface{}{
		facultyDoc(1, "Alice Moreau", "Stanford University", kw("machine learning", 0.9), kw("computer vision", 0.5)),
		facultyDoc(2, "Chen Wei", "Stanford University", kw("genetic algorithm", 0.8), kw("machine learning", 0.4)),
		facultyDoc(3, "Dana Okafor", "Massachusetts Institute of Technology", kw("databases", 0.9), kw("data mining", 0.7)),
	}
	if _, err := db.Collection(documents.FacultyCollection).InsertMany(ctx, faculty); err != nil {
		return fmt.Errorf("seed faculty: %w", err)
	}
	return nil
}

func kw(name string, score float64) bson.M {
	return bson.M{"name": name, "score": score}
}

func publicationDoc(id int, title string, citations int, keywords ...bson.M) bson.M {
	return bson.M{"id": id, "title": title, "numCitations": citations, "keywords": keywords}
}

func facultyDoc(id int, name, university string, keywords ...bson.M) bson.M {
	return bson.M{"id": id, "name": name, "affiliation": bson.M{"name": university}, "keywords": keywords}
}
