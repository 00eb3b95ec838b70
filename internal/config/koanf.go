// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/academicworld/config.yaml",
	"/etc/academicworld/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8050,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Database: DatabaseConfig{
			Driver:       DriverDuckDB,
			Path:         "/data/academicworld.duckdb",
			MaxMemory:    "1GB",
			Threads:      0, // runtime.NumCPU()
			MaxOpenConns: 10,
			InitSchema:   true,
			SeedMockData: false,
		},
		Documents: DocumentsConfig{
			URI:            "mongodb://127.0.0.1:27017",
			Database:       "academicworld",
			ConnectTimeout: 10 * time.Second,
		},
		Graph: GraphConfig{
			URI:      "neo4j://127.0.0.1:7687",
			Username: "neo4j",
			Password: "",
			Database: "academicworld",
		},
		Dashboard: DashboardConfig{
			QueryTimeout:            10 * time.Second,
			DefaultLimit:            10,
			DefaultKeyword:          "data mining",
			DefaultUniversity:       "Stanford University",
			DefaultSpotlightKeyword: "genetic algorithm",
			OptionsCacheTTL:         0,
		},
		Security: SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      2 * time.Minute,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
	}
}

// LoadWithKoanf loads configuration in three layers, later layers winning:
//  1. built-in defaults
//  2. an optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. environment variables listed in envMappings
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as env strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
// Anything not listed is ignored so unrelated variables cannot leak in.
var envMappings = map[string]string{
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"db_driver":         "database.driver",
	"database_url":      "database.dsn",
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",
	"db_max_open_conns": "database.max_open_conns",
	"db_init_schema":    "database.init_schema",
	"seed_mock_data":    "database.seed_mock_data",

	"mongo_uri":             "documents.uri",
	"mongo_database":        "documents.database",
	"mongo_connect_timeout": "documents.connect_timeout",

	"neo4j_uri":      "graph.uri",
	"neo4j_username": "graph.username",
	"neo4j_password": "graph.password",
	"neo4j_database": "graph.database",

	"query_timeout":             "dashboard.query_timeout",
	"default_limit":             "dashboard.default_limit",
	"default_keyword":           "dashboard.default_keyword",
	"default_university":        "dashboard.default_university",
	"default_spotlight_keyword": "dashboard.default_spotlight_keyword",
	"options_cache_ttl":         "dashboard.options_cache_ttl",

	"rate_limit_reqs":    "security.rate_limit_reqs",
	"rate_limit_window":  "security.rate_limit_window",
	"disable_rate_limit": "security.rate_limit_disabled",
	"cors_origins":       "security.cors_origins",

	"breaker_enabled":       "breaker.enabled",
	"breaker_max_requests":  "breaker.max_requests",
	"breaker_interval":      "breaker.interval",
	"breaker_timeout":       "breaker.timeout",
	"breaker_min_requests":  "breaker.min_requests",
	"breaker_failure_ratio": "breaker.failure_ratio",
}

// envTransformFunc maps an environment variable name to its koanf path,
// returning "" for variables the server does not read.
//
//	NEO4J_URI    -> graph.uri
//	DATABASE_URL -> database.dsn
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
