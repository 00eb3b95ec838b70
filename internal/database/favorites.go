// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package database

import (
	"context"
	"fmt"
)

// AddFavoriteKeyword inserts one favorites row. The id comes from
// favorite_keyword_seq and duplicates are allowed. The statement runs in
// autocommit, so the row is durable when this returns nil.
func (db *DB) AddFavoriteKeyword(ctx context.Context, name string) error {
	_, err := run(db, "add_favorite_keyword", func() (struct{}, error) {
		_, err := db.conn.ExecContext(ctx, `INSERT INTO favorite_keyword (name) VALUES ($1)`, name)
		return struct{}{}, err
	})
	if err != nil {
		return fmt.Errorf("insert favorite keyword: %w", err)
	}
	return nil
}

// RemoveFavoriteKeyword deletes every row whose name equals name once
// surrounding whitespace is ignored on both sides, and reports how many were
// removed. The match is otherwise exact, so rows inserted untrimmed by older
// clients can still be deleted.
func (db *DB) RemoveFavoriteKeyword(ctx context.Context, name string) (int64, error) {
	n, err := run(db, "remove_favorite_keyword", func() (int64, error) {
		res, err := db.conn.ExecContext(ctx, `DELETE FROM favorite_keyword WHERE trim(name) = trim($1)`, name)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	})
	if err != nil {
		return 0, fmt.Errorf("delete favorite keyword: %w", err)
	}
	return n, nil
}

// FavoriteKeywords returns the distinct favorite names, sorted.
func (db *DB) FavoriteKeywords(ctx context.Context) ([]string, error) {
	names, err := run(db, "favorite_keywords", func() ([]string, error) {
		return queryAndScan(ctx, db.conn, `SELECT DISTINCT name FROM favorite_keyword ORDER BY name`, nil, scanString)
	})
	if err != nil {
		return nil, fmt.Errorf("query favorite keywords: %w", err)
	}
	return names, nil
}
