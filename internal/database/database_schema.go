// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/academicworld/internal/config"
	"github.com/tomtom215/academicworld/internal/logging"
)

// academicSchema mirrors the tables of the academic dataset. It is only
// applied to the embedded store; a PostgreSQL deployment brings its own.
var academicSchema = []string{
	`CREATE TABLE IF NOT EXISTS university (
		id INTEGER PRIMARY KEY,
		name VARCHAR NOT NULL,
		photo_url VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS keyword (
		id INTEGER PRIMARY KEY,
		name VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS faculty (
		id INTEGER PRIMARY KEY,
		name VARCHAR NOT NULL,
		position VARCHAR,
		email VARCHAR,
		photo_url VARCHAR,
		university_id INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS publication (
		id INTEGER PRIMARY KEY,
		title VARCHAR NOT NULL,
		venue VARCHAR,
		year INTEGER,
		num_citations INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS publication_keyword (
		publication_id INTEGER NOT NULL,
		keyword_id INTEGER NOT NULL,
		score FLOAT8,
		PRIMARY KEY (publication_id, keyword_id)
	)`,
	`CREATE TABLE IF NOT EXISTS faculty_publication (
		faculty_id INTEGER NOT NULL,
		publication_id INTEGER NOT NULL,
		PRIMARY KEY (faculty_id, publication_id)
	)`,
	`CREATE OR REPLACE VIEW publication_view AS
		SELECT u.name AS university_name, k.name AS keyword_name, p.id AS publication_id
		FROM university u
		JOIN faculty f ON f.university_id = u.id
		JOIN faculty_publication fp ON fp.faculty_id = f.id
		JOIN publication p ON p.id = fp.publication_id
		JOIN publication_keyword pk ON pk.publication_id = p.id
		JOIN keyword k ON k.id = pk.keyword_id`,
	`CREATE OR REPLACE VIEW research_view AS
		SELECT k.name AS keyword_name, f.id AS faculty_id, f.name AS faculty_name,
			f.photo_url AS faculty_photo_url, p.id AS publication_id
		FROM faculty f
		JOIN faculty_publication fp ON fp.faculty_id = f.id
		JOIN publication p ON p.id = fp.publication_id
		JOIN publication_keyword pk ON pk.publication_id = p.id
		JOIN keyword k ON k.id = pk.keyword_id`,
}

// favoritesSchema is valid in both DuckDB and PostgreSQL. Names are not
// unique: adding the same keyword twice stores two rows.
var favoritesSchema = []string{
	`CREATE SEQUENCE IF NOT EXISTS favorite_keyword_seq START 1`,
	`CREATE TABLE IF NOT EXISTS favorite_keyword (
		id BIGINT PRIMARY KEY DEFAULT nextval('favorite_keyword_seq'),
		name VARCHAR NOT NULL
	)`,
}

// initialize creates the schema objects this process is responsible for.
func (db *DB) initialize(ctx context.Context) error {
	if db.Driver() == config.DriverDuckDB && db.cfg.InitSchema {
		if err := db.execAll(ctx, academicSchema); err != nil {
			return fmt.Errorf("create academic schema: %w", err)
		}
	}
	if err := db.execAll(ctx, favoritesSchema); err != nil {
		return fmt.Errorf("create favorites schema: %w", err)
	}

	if db.cfg.SeedMockData {
		if err := db.SeedMockData(ctx); err != nil {
			return fmt.Errorf("seed mock data: %w", err)
		}
	}

	logging.Info().Str("driver", db.Driver()).Bool("schema_init", db.cfg.InitSchema).Msg("Database initialized")
	return nil
}

func (db *DB) execAll(ctx context.Context, statements []string) error {
	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
