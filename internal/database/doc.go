// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

/*
Package database is the relational store of the dashboard.

It reads universities, keywords, faculty and publications together with the
publication_view and research_view join views, and it owns the one mutable
table, favorite_keyword.

Two drivers are supported through database/sql:

  - duckdb (github.com/duckdb/duckdb-go/v2): embedded, used for development,
    demos and unit tests. The schema and views are created on startup and
    SeedMockData can load a small sample dataset.
  - pgx (github.com/jackc/pgx/v5/stdlib): an existing PostgreSQL database that
    already holds the academic tables. Only favorite_keyword is created if
    missing.

Every statement uses $N placeholders, which both drivers accept. No query text
is built from user input.

Each call is timed into the store_query_* metrics and runs through the
relational circuit breaker. Callers bound the call with their context.
*/
package database
