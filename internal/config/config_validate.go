// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package config

import (
	"fmt"
	"strings"
)

// validLimits are the slider stops of the keyword-by-publication widget.
var validLimits = map[int]bool{5: true, 10: true, 15: true, 20: true, 25: true}

// IsValidLimit reports whether n is one of the slider stops (5 to 25, step 5).
func IsValidLimit(n int) bool {
	return validLimits[n]
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateStores(); err != nil {
		return err
	}
	if err := c.validateDashboard(); err != nil {
		return err
	}
	if err := c.validateBreaker(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs <= 0 {
			return fmt.Errorf("RATE_LIMIT_REQS must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
		}
	}
	return nil
}

func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case DriverDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DB_DRIVER=%s", DriverDuckDB)
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=%s", DriverPostgres)
		}
		if c.Database.SeedMockData {
			return fmt.Errorf("SEED_MOCK_DATA is only supported with DB_DRIVER=%s", DriverDuckDB)
		}
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverDuckDB, DriverPostgres, c.Database.Driver)
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0, got %d", c.Database.Threads)
	}
	return nil
}

func (c *Config) validateStores() error {
	if !strings.HasPrefix(c.Documents.URI, "mongodb://") && !strings.HasPrefix(c.Documents.URI, "mongodb+srv://") {
		return fmt.Errorf("MONGO_URI must start with mongodb:// or mongodb+srv://, got %q", c.Documents.URI)
	}
	if c.Documents.Database == "" {
		return fmt.Errorf("MONGO_DATABASE is required")
	}
	if c.Documents.ConnectTimeout <= 0 {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT must be positive, got %v", c.Documents.ConnectTimeout)
	}
	if c.Graph.URI == "" {
		return fmt.Errorf("NEO4J_URI is required")
	}
	if c.Graph.Username == "" {
		return fmt.Errorf("NEO4J_USERNAME is required")
	}
	return nil
}

func (c *Config) validateDashboard() error {
	if c.Dashboard.QueryTimeout <= 0 {
		return fmt.Errorf("QUERY_TIMEOUT must be positive, got %v", c.Dashboard.QueryTimeout)
	}
	if !IsValidLimit(c.Dashboard.DefaultLimit) {
		return fmt.Errorf("DEFAULT_LIMIT must be one of 5, 10, 15, 20, 25, got %d", c.Dashboard.DefaultLimit)
	}
	if c.Dashboard.OptionsCacheTTL < 0 {
		return fmt.Errorf("OPTIONS_CACHE_TTL must be >= 0, got %v", c.Dashboard.OptionsCacheTTL)
	}
	if strings.TrimSpace(c.Dashboard.DefaultKeyword) == "" {
		return fmt.Errorf("DEFAULT_KEYWORD is required")
	}
	if strings.TrimSpace(c.Dashboard.DefaultUniversity) == "" {
		return fmt.Errorf("DEFAULT_UNIVERSITY is required")
	}
	if strings.TrimSpace(c.Dashboard.DefaultSpotlightKeyword) == "" {
		return fmt.Errorf("DEFAULT_SPOTLIGHT_KEYWORD is required")
	}
	return nil
}

func (c *Config) validateBreaker() error {
	if !c.Breaker.Enabled {
		return nil
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", c.Breaker.FailureRatio)
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive, got %v", c.Breaker.Timeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
