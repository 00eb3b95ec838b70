// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tomtom215/academicworld/internal/breaker"
	"github.com/tomtom215/academicworld/internal/config"
	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/metrics"
)

// DB wraps the relational connection pool.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
	cb   *breaker.Breaker
}

// New opens the relational store and prepares its schema. cb may be nil.
func New(cfg *config.DatabaseConfig, cb *breaker.Breaker) (*DB, error) {
	var (
		conn *sql.DB
		err  error
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		conn, err = openPostgres(cfg)
	case config.DriverDuckDB, "":
		conn, err = openDuckDB(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	db := &DB{conn: conn, cfg: cfg, cb: cb}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	if err := db.initialize(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func openDuckDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	if cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}
	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
		cfg.Path, threads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	conn.SetMaxOpenConns(max(threads, 1))
	conn.SetMaxIdleConns(2)
	return conn, nil
}

func openPostgres(cfg *config.DatabaseConfig) (*sql.DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(5 * time.Minute)
	return conn, nil
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	if db.cfg.Driver == "" {
		return config.DriverDuckDB
	}
	return db.cfg.Driver
}

// Conn exposes the pool for tests and tooling.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping checks that the store answers.
func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.conn == nil {
		return ErrNotConnected
	}
	return db.conn.PingContext(ctx)
}

// Close releases the pool. It is safe to call more than once.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	err := db.conn.Close()
	db.conn = nil
	if err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	logging.Info().Str("driver", db.Driver()).Msg("Database closed")
	return nil
}

// run times fn into the store metrics and routes it through the breaker.
func run[T any](db *DB, operation string, fn func() (T, error)) (T, error) {
	if db == nil || db.conn == nil {
		var zero T
		return zero, ErrNotConnected
	}
	start := time.Now()
	v, err := breaker.Do(db.cb, fn)
	metrics.RecordStoreQuery(metrics.StoreRelational, operation, time.Since(start), err)
	return v, err
}

// scanFunc scans one row into T.
type scanFunc[T any] func(*sql.Rows) (T, error)

// queryAndScan runs query and scans every row. The result is never nil.
func queryAndScan[T any](ctx context.Context, conn *sql.DB, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanString(rows *sql.Rows) (string, error) {
	var s string
	err := rows.Scan(&s)
	return s, err
}
