// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolateConfigPaths points the loader at an empty directory so a stray
// config.yaml in the working tree cannot affect the test.
func isolateConfigPaths(t *testing.T) {
	t.Helper()
	orig := DefaultConfigPaths
	DefaultConfigPaths = []string{filepath.Join(t.TempDir(), "absent.yaml")}
	t.Cleanup(func() { DefaultConfigPaths = orig })
	t.Setenv(ConfigPathEnvVar, "")
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolateConfigPaths(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8050 {
		t.Errorf("Server.Port = %d, want 8050", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Dashboard.OptionsCacheTTL != 0 {
		t.Errorf("Dashboard.OptionsCacheTTL = %v, want caching off by default", cfg.Dashboard.OptionsCacheTTL)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolateConfigPaths(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("NEO4J_URI", "bolt://graph:7687")
	t.Setenv("MONGO_DATABASE", "scholar")
	t.Setenv("QUERY_TIMEOUT", "3s")
	t.Setenv("DEFAULT_LIMIT", "25")
	t.Setenv("OPTIONS_CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Graph.URI != "bolt://graph:7687" {
		t.Errorf("Graph.URI = %q, want bolt://graph:7687", cfg.Graph.URI)
	}
	if cfg.Documents.Database != "scholar" {
		t.Errorf("Documents.Database = %q, want scholar", cfg.Documents.Database)
	}
	if cfg.Dashboard.QueryTimeout != 3*time.Second {
		t.Errorf("Dashboard.QueryTimeout = %v, want 3s", cfg.Dashboard.QueryTimeout)
	}
	if cfg.Dashboard.DefaultLimit != 25 {
		t.Errorf("Dashboard.DefaultLimit = %d, want 25", cfg.Dashboard.DefaultLimit)
	}
	if cfg.Dashboard.OptionsCacheTTL != 90*time.Second {
		t.Errorf("Dashboard.OptionsCacheTTL = %v, want 90s", cfg.Dashboard.OptionsCacheTTL)
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}

func TestLoadWithKoanf_File(t *testing.T) {
	isolateConfigPaths(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 7000
database:
  driver: pgx
  dsn: postgres://academic@db/academicworld
graph:
  database: research
dashboard:
  default_keyword: machine learning
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Server.Port = %d, want 7100 (env beats file)", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Database.Driver = %q, want pgx", cfg.Database.Driver)
	}
	if cfg.Graph.Database != "research" {
		t.Errorf("Graph.Database = %q, want research", cfg.Graph.Database)
	}
	if cfg.Dashboard.DefaultKeyword != "machine learning" {
		t.Errorf("Dashboard.DefaultKeyword = %q, want machine learning", cfg.Dashboard.DefaultKeyword)
	}
	if cfg.Dashboard.DefaultUniversity != "Stanford University" {
		t.Errorf("Dashboard.DefaultUniversity = %q, want default retained", cfg.Dashboard.DefaultUniversity)
	}
}

func TestLoadWithKoanf_InvalidEnv(t *testing.T) {
	isolateConfigPaths(t)
	t.Setenv("DEFAULT_LIMIT", "12")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() = nil error, want validation failure for DEFAULT_LIMIT=12")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"NEO4J_URI":    "graph.uri",
		"DATABASE_URL": "database.dsn",
		"MONGO_URI":    "documents.uri",
		"LOG_LEVEL":    "logging.level",
		"PATH":         "",
		"HOME":         "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}
