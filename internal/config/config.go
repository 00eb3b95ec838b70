// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

// Package config loads the dashboard server configuration.
//
// Values are layered: struct defaults, then an optional YAML file, then
// environment variables. See LoadWithKoanf for the precedence rules.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Database  DatabaseConfig  `koanf:"database"`
	Documents DocumentsConfig `koanf:"documents"`
	Graph     GraphConfig     `koanf:"graph"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Security  SecurityConfig  `koanf:"security"`
	Breaker   BreakerConfig   `koanf:"breaker"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Relational drivers accepted by DatabaseConfig.Driver.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "pgx"
)

// DatabaseConfig configures the relational store.
//
// With the duckdb driver the store is embedded and Path points at the file
// (":memory:" for an ephemeral database). With pgx, DSN is a PostgreSQL
// connection string and the academic tables are expected to exist already.
type DatabaseConfig struct {
	Driver       string `koanf:"driver"`
	DSN          string `koanf:"dsn"`
	Path         string `koanf:"path"`
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	InitSchema   bool   `koanf:"init_schema"`
	SeedMockData bool   `koanf:"seed_mock_data"`
}

// DocumentsConfig configures the MongoDB document store.
type DocumentsConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// GraphConfig configures the Neo4j graph store.
type GraphConfig struct {
	URI      string `koanf:"uri"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Database string `koanf:"database"`
}

// DashboardConfig holds widget defaults and per-request limits.
type DashboardConfig struct {
	QueryTimeout            time.Duration `koanf:"query_timeout"`
	DefaultLimit            int           `koanf:"default_limit"`
	DefaultKeyword          string        `koanf:"default_keyword"`
	DefaultUniversity       string        `koanf:"default_university"`
	DefaultSpotlightKeyword string        `koanf:"default_spotlight_keyword"`

	// OptionsCacheTTL keeps the dropdown lists in memory. Zero, the default,
	// reads them from the relational store on every request.
	OptionsCacheTTL time.Duration `koanf:"options_cache_ttl"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// BreakerConfig configures the per-store circuit breakers.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// IsProduction reports whether the server runs with ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from all sources. It is the entry point used by main.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
