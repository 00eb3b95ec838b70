// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomtom215/academicworld/internal/models"
)

// TopKeywordsByPublications ranks keywords by the number of distinct
// publications tagged with them and returns at most limit rows.
func (db *DB) TopKeywordsByPublications(ctx context.Context, limit int) ([]models.KeywordPublicationCount, error) {
	const query = `
		SELECT k.name, COUNT(DISTINCT pk.publication_id) AS publication_count
		FROM keyword k
		JOIN publication_keyword pk ON k.id = pk.keyword_id
		GROUP BY k.name
		ORDER BY publication_count DESC, k.name
		LIMIT $1`

	rows, err := run(db, "top_keywords_by_publications", func() ([]models.KeywordPublicationCount, error) {
		return queryAndScan(ctx, db.conn, query, []interface{}{limit}, func(r *sql.Rows) (models.KeywordPublicationCount, error) {
			var row models.KeywordPublicationCount
			err := r.Scan(&row.Keyword, &row.PublicationCount)
			return row, err
		})
	})
	if err != nil {
		return nil, fmt.Errorf("query top keywords: %w", err)
	}
	return rows, nil
}

// PublicationTopicsForUniversity counts the distinct publications per keyword
// written by faculty of university.
func (db *DB) PublicationTopicsForUniversity(ctx context.Context, university string, limit int) ([]models.TopicCount, error) {
	const query = `
		SELECT keyword_name, COUNT(DISTINCT publication_id) AS publication_count
		FROM publication_view
		WHERE university_name = $1
		GROUP BY keyword_name
		ORDER BY publication_count DESC, keyword_name
		LIMIT $2`

	rows, err := run(db, "publication_topics_for_university", func() ([]models.TopicCount, error) {
		return queryAndScan(ctx, db.conn, query, []interface{}{university, limit}, func(r *sql.Rows) (models.TopicCount, error) {
			var row models.TopicCount
			err := r.Scan(&row.Keyword, &row.Count)
			return row, err
		})
	})
	if err != nil {
		return nil, fmt.Errorf("query publication topics: %w", err)
	}
	return rows, nil
}

// TopFacultyForKeyword returns the faculty member with the most distinct
// publications tagged keyword, or nil when nobody has one. Ties go to the
// lowest faculty id.
func (db *DB) TopFacultyForKeyword(ctx context.Context, keyword string) (*models.FacultyProfile, error) {
	const query = `
		SELECT faculty_id, faculty_name, faculty_photo_url, COUNT(DISTINCT publication_id) AS publication_count
		FROM research_view
		WHERE keyword_name = $1
		GROUP BY faculty_id, faculty_name, faculty_photo_url
		ORDER BY publication_count DESC, faculty_id
		LIMIT 1`

	profile, err := run(db, "top_faculty_for_keyword", func() (*models.FacultyProfile, error) {
		var (
			p     models.FacultyProfile
			photo sql.NullString
		)
		err := db.conn.QueryRowContext(ctx, query, keyword).Scan(&p.FacultyID, &p.Name, &photo, &p.PublicationCount)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		p.PhotoURL = photo.String
		return &p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("query top faculty for keyword: %w", err)
	}
	return profile, nil
}

// TopCitedPublicationsForFaculty lists a faculty member's publications by
// citation count, highest first.
func (db *DB) TopCitedPublicationsForFaculty(ctx context.Context, facultyID int64, limit int) ([]models.PublicationCitation, error) {
	const query = `
		SELECT p.title, COALESCE(p.num_citations, 0) AS num_citations
		FROM faculty_publication fp
		JOIN publication p ON p.id = fp.publication_id
		WHERE fp.faculty_id = $1
		ORDER BY num_citations DESC, p.title
		LIMIT $2`

	rows, err := run(db, "top_cited_publications_for_faculty", func() ([]models.PublicationCitation, error) {
		return queryAndScan(ctx, db.conn, query, []interface{}{facultyID, limit}, func(r *sql.Rows) (models.PublicationCitation, error) {
			var row models.PublicationCitation
			err := r.Scan(&row.Title, &row.NumCitations)
			return row, err
		})
	})
	if err != nil {
		return nil, fmt.Errorf("query faculty publications: %w", err)
	}
	return rows, nil
}

// UniversityNames, KeywordNames and FacultyNames feed the dashboard dropdowns.

// UniversityNames returns every distinct university name, sorted.
func (db *DB) UniversityNames(ctx context.Context) ([]string, error) {
	return db.distinctNames(ctx, "university_names", `SELECT DISTINCT name FROM university ORDER BY name`)
}

// KeywordNames returns every distinct keyword name, sorted.
func (db *DB) KeywordNames(ctx context.Context) ([]string, error) {
	return db.distinctNames(ctx, "keyword_names", `SELECT DISTINCT name FROM keyword ORDER BY name`)
}

// FacultyNames returns every distinct faculty name, sorted.
func (db *DB) FacultyNames(ctx context.Context) ([]string, error) {
	return db.distinctNames(ctx, "faculty_names", `SELECT DISTINCT name FROM faculty ORDER BY name`)
}

func (db *DB) distinctNames(ctx context.Context, operation, query string) ([]string, error) {
	names, err := run(db, operation, func() ([]string, error) {
		return queryAndScan(ctx, db.conn, query, nil, scanString)
	})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", operation, err)
	}
	return names, nil
}
