// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package graph

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeRunner struct {
	calls   int
	cypher  string
	params  map[string]any
	key     string
	results []string
	err     error
	closed  bool
}

func (f *fakeRunner) columnValues(_ context.Context, cypher string, params map[string]any, key string) ([]string, error) {
	f.calls++
	f.cypher, f.params, f.key = cypher, params, key
	return f.results, f.err
}

func (f *fakeRunner) verify(context.Context) error { return f.err }

func (f *fakeRunner) close(context.Context) error {
	f.closed = true
	return nil
}

func TestFacultyForKeywords(t *testing.T) {
	runner := &fakeRunner{results: []string{"Ada Whitfield", "Chen Wei"}}
	s := &Store{runner: runner}

	got, err := s.FacultyForKeywords(context.Background(), []string{"data mining", "genetic algorithm"})
	if err != nil {
		t.Fatalf("FacultyForKeywords() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "Ada Whitfield" || got[1].Name != "Chen Wei" {
		t.Errorf("got %+v", got)
	}
	if runner.key != "faculty_name" {
		t.Errorf("key = %q, want faculty_name", runner.key)
	}
	if !strings.Contains(runner.cypher, "(f:FACULTY)-->(k:KEYWORD)") || !strings.Contains(runner.cypher, "DISTINCT") {
		t.Errorf("cypher = %q", runner.cypher)
	}
	kw, ok := runner.params["keywords"].([]string)
	if !ok || len(kw) != 2 || kw[0] != "data mining" {
		t.Errorf("params = %v, want keywords list", runner.params)
	}
}

func TestPublicationsForKeywords(t *testing.T) {
	runner := &fakeRunner{results: []string{"Mining Citation Graphs at Scale"}}
	s := &Store{runner: runner}

	got, err := s.PublicationsForKeywords(context.Background(), []string{"data mining"})
	if err != nil {
		t.Fatalf("PublicationsForKeywords() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "Mining Citation Graphs at Scale" {
		t.Errorf("got %+v", got)
	}
	if runner.key != "title" || !strings.Contains(runner.cypher, "(p:PUBLICATION)-->(k:KEYWORD)") {
		t.Errorf("key = %q, cypher = %q", runner.key, runner.cypher)
	}
}

func TestTraverse_EmptyKeywordsSkipsQuery(t *testing.T) {
	runner := &fakeRunner{}
	s := &Store{runner: runner}

	faculty, err := s.FacultyForKeywords(context.Background(), nil)
	if err != nil {
		t.Fatalf("FacultyForKeywords(nil) error = %v", err)
	}
	pubs, err := s.PublicationsForKeywords(context.Background(), []string{})
	if err != nil {
		t.Fatalf("PublicationsForKeywords(empty) error = %v", err)
	}
	if faculty == nil || pubs == nil || len(faculty) != 0 || len(pubs) != 0 {
		t.Errorf("got %v / %v, want empty non-nil slices", faculty, pubs)
	}
	if runner.calls != 0 {
		t.Errorf("runner called %d times, want 0", runner.calls)
	}
}

func TestTraverse_Error(t *testing.T) {
	boom := errors.New("connection reset")
	s := &Store{runner: &fakeRunner{err: boom}}

	if _, err := s.FacultyForKeywords(context.Background(), []string{"x"}); !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
	if err := s.Ping(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Ping() = %v, want %v", err, boom)
	}
}

func TestStore_Close(t *testing.T) {
	runner := &fakeRunner{}
	s := &Store{runner: runner}

	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !runner.closed {
		t.Error("runner was not closed")
	}
	if err := s.Close(context.Background()); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := s.FacultyForKeywords(context.Background(), []string{"x"}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("after Close error = %v, want ErrNotConnected", err)
	}
}
