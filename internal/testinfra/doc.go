// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

// Package testinfra starts MongoDB and Neo4j containers for integration tests
// and seeds them with the same small academic dataset the embedded relational
// store uses with SEED_MOCK_DATA.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/testinfra/...
//
//	func TestTopics(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongo.Container)
//	    ...
//	}
//
// Tests skip when no Docker daemon is reachable. The first run pulls the
// images.
package testinfra
