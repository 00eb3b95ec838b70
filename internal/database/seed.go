// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/models"
)

type seedFaculty struct {
	models.Faculty
	UniversityID int64
}

type seedLink struct {
	PublicationID int64
	KeywordID     int64
	Score         float64
}

var (
	seedUniversities = []struct {
		ID int64
		models.University
	}{
		{1, models.University{Name: "Stanford University"}},
		{2, models.University{Name: "University of Illinois at Urbana-Champaign"}},
		{3, models.University{Name: "Carnegie Mellon University"}},
	}

	seedKeywords = []struct {
		ID int64
		models.Keyword
	}{
		{1, models.Keyword{Name: "data mining"}},
		{2, models.Keyword{Name: "machine learning"}},
		{3, models.Keyword{Name: "genetic algorithm"}},
		{4, models.Keyword{Name: "computer vision"}},
		{5, models.Keyword{Name: "natural language processing"}},
		{6, models.Keyword{Name: "databases"}},
	}

	seedFacultyMembers = []seedFaculty{
		{models.Faculty{ID: 1, Name: "Ada Whitfield", PhotoURL: "https://images.example.org/faculty/1.jpg"}, 1},
		{models.Faculty{ID: 2, Name: "Boris Lindqvist", PhotoURL: "https://images.example.org/faculty/2.jpg"}, 1},
		{models.Faculty{ID: 3, Name: "Chen Wei", PhotoURL: "https://images.example.org/faculty/3.jpg"}, 2},
		{models.Faculty{ID: 4, Name: "Dana Okafor", PhotoURL: ""}, 2},
		{models.Faculty{ID: 5, Name: "Elena Ruiz", PhotoURL: "https://images.example.org/faculty/5.jpg"}, 3},
		{models.Faculty{ID: 6, Name: "Farid Haddad", PhotoURL: "https://images.example.org/faculty/6.jpg"}, 3},
	}

	seedPublications = []models.Publication{
		{ID: 1, Title: "Scalable Frequent Pattern Mining", NumCitations: 1520},
		{ID: 2, Title: "Evolving Neural Topologies with Genetic Algorithms", NumCitations: 880},
		{ID: 3, Title: "Convolutional Features for Scene Parsing", NumCitations: 2300},
		{ID: 4, Title: "Query Optimization in Column Stores", NumCitations: 640},
		{ID: 5, Title: "Learning to Rank for Web Search", NumCitations: 1100},
		{ID: 6, Title: "Multi-Objective Genetic Search for Scheduling", NumCitations: 310},
		{ID: 7, Title: "Mining Citation Graphs at Scale", NumCitations: 450},
		{ID: 8, Title: "Semantic Parsing with Sequence Models", NumCitations: 970},
		{ID: 9, Title: "Genetic Programming for Feature Construction", NumCitations: 205},
		{ID: 10, Title: "Index Tuning with Reinforcement Learning", NumCitations: 130},
	}

	seedPublicationKeywords = []seedLink{
		{1, 1, 0.92}, {1, 6, 0.41},
		{2, 3, 0.95}, {2, 2, 0.63},
		{3, 4, 0.97}, {3, 2, 0.55},
		{4, 6, 0.93},
		{5, 2, 0.81}, {5, 1, 0.47},
		{6, 3, 0.88},
		{7, 1, 0.90},
		{8, 5, 0.94}, {8, 2, 0.52},
		{9, 3, 0.79}, {9, 2, 0.60},
		{10, 6, 0.70}, {10, 2, 0.66},
	}

	// faculty id -> publication ids
	seedAuthorship = map[int64][]int64{
		1: {1, 5, 7},
		2: {3, 8},
		3: {2, 6, 9},
		4: {2, 4, 10},
		5: {3, 6, 8},
	}
)

// SeedMockData loads a small academic dataset into an empty embedded store.
// It does nothing when the university table already has rows.
func (db *DB) SeedMockData(ctx context.Context) error {
	var existing int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM university`).Scan(&existing); err != nil {
		return fmt.Errorf("count universities: %w", err)
	}
	if existing > 0 {
		logging.Info().Int("universities", existing).Msg("Database already populated, skipping seed")
		return nil
	}

	logging.Info().Msg("Seeding database with sample academic data...")

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range seedUniversities {
		if _, err := tx.ExecContext(ctx, `INSERT INTO university (id, name) VALUES ($1, $2)`, u.ID, u.Name); err != nil {
			return fmt.Errorf("insert university %q: %w", u.Name, err)
		}
	}
	for _, k := range seedKeywords {
		if _, err := tx.ExecContext(ctx, `INSERT INTO keyword (id, name) VALUES ($1, $2)`, k.ID, k.Name); err != nil {
			return fmt.Errorf("insert keyword %q: %w", k.Name, err)
		}
	}
	for _, f := range seedFacultyMembers {
		photo := sql.NullString{String: f.PhotoURL, Valid: f.PhotoURL != ""}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO faculty (id, name, photo_url, university_id) VALUES ($1, $2, $3, $4)`,
			f.ID, f.Name, photo, f.UniversityID); err != nil {
			return fmt.Errorf("insert faculty %q: %w", f.Name, err)
		}
	}
	for _, p := range seedPublications {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO publication (id, title, num_citations) VALUES ($1, $2, $3)`,
			p.ID, p.Title, p.NumCitations); err != nil {
			return fmt.Errorf("insert publication %d: %w", p.ID, err)
		}
	}
	for _, l := range seedPublicationKeywords {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO publication_keyword (publication_id, keyword_id, score) VALUES ($1, $2, $3)`,
			l.PublicationID, l.KeywordID, l.Score); err != nil {
			return fmt.Errorf("insert publication_keyword (%d, %d): %w", l.PublicationID, l.KeywordID, err)
		}
	}
	for facultyID, pubs := range seedAuthorship {
		for _, pubID := range pubs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO faculty_publication (faculty_id, publication_id) VALUES ($1, $2)`,
				facultyID, pubID); err != nil {
				return fmt.Errorf("insert faculty_publication (%d, %d): %w", facultyID, pubID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	logging.Info().
		Int("universities", len(seedUniversities)).
		Int("faculty", len(seedFacultyMembers)).
		Int("publications", len(seedPublications)).
		Msg("Sample data seeded")
	return nil
}
