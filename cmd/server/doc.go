// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

/*
Package main is the entry point for the Academic World dashboard server.

The server answers the widgets of a research publications dashboard from three
stores: a relational store (DuckDB embedded, or PostgreSQL), a MongoDB document
store and a Neo4j graph store. It also keeps a set of favorite keywords and
pushes every refreshed favorites table to websocket subscribers.

# Application Architecture

	RootSupervisor ("academicworld")
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocket Hub (favorites_updated pushes)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: koanf defaults, optional YAML file, environment
 2. Logging: zerolog, JSON or console
 3. Circuit breakers: one per store
 4. Stores: relational, documents, graph
 5. Dashboard service and favorites coordinator
 6. WebSocket hub, registered as the coordinator's notifier
 7. Supervisor tree and HTTP server

# Configuration

Common environment variables:

	HTTP_PORT=8050
	DB_DRIVER=duckdb DUCKDB_PATH=/data/academicworld.duckdb SEED_MOCK_DATA=true
	DB_DRIVER=pgx DATABASE_URL=postgres://user:pass@db/academicworld
	MONGO_URI=mongodb://localhost:27017 MONGO_DATABASE=academicworld
	NEO4J_URI=neo4j://localhost:7687 NEO4J_USERNAME=neo4j NEO4J_PASSWORD=secret

CONFIG_PATH points at a YAML file with the same keys as the koanf tags in
internal/config.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains for up
to 10 seconds, then the stores are closed.
*/
package main
