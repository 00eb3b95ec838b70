// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/academicworld/internal/cache"
	"github.com/tomtom215/academicworld/internal/config"
	"github.com/tomtom215/academicworld/internal/logging"
	"github.com/tomtom215/academicworld/internal/models"
)

// widgetLimit caps every fixed-size widget.
const widgetLimit = 10

// AllowedLimits are the stops of the keyword-by-publication slider.
var AllowedLimits = []int{5, 10, 15, 20, 25}

const optionsCacheKey = "all"

// ErrInvalidLimit is returned for a slider value outside AllowedLimits.
var ErrInvalidLimit = errors.New("limit must be one of 5, 10, 15, 20, 25")

// Service dispatches widget reads. It is safe for concurrent use.
type Service struct {
	rel    RelationalStore
	docs   DocumentStore
	cfg    config.DashboardConfig
	logger zerolog.Logger

	// nil when OptionsCacheTTL is zero
	options *cache.Cache[*models.DropdownOptions]
}

// NewService creates the widget dispatcher.
func NewService(rel RelationalStore, docs DocumentStore, cfg *config.DashboardConfig) *Service {
	s := &Service{
		rel:    rel,
		docs:   docs,
		cfg:    *cfg,
		logger: logging.WithComponent("dashboard"),
	}
	if cfg.OptionsCacheTTL > 0 {
		s.options = cache.New[*models.DropdownOptions]("dropdown_options", cfg.OptionsCacheTTL)
	}
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.QueryTimeout)
}

// KeywordPublications is widget 1: the limit keywords with the most
// publications.
func (s *Service) KeywordPublications(ctx context.Context, limit int) ([]models.KeywordPublicationCount, error) {
	if !config.IsValidLimit(limit) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.rel.TopKeywordsByPublications(ctx, limit)
	if err != nil {
		return nil, err
	}
	return orEmpty(rows), nil
}

// TopPublications is widget 2: the most cited publications for keyword.
func (s *Service) TopPublications(ctx context.Context, keyword string) ([]models.PublicationScore, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.docs.TopPublicationsForKeyword(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return orEmpty(rows), nil
}

// FacultyTopics is widget 3: keyword counts over a university's faculty
// documents.
func (s *Service) FacultyTopics(ctx context.Context, university string) ([]models.TopicCount, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.docs.ResearchTopicsForUniversity(ctx, university)
	if err != nil {
		return nil, err
	}
	return orEmpty(rows), nil
}

// PublicationTopics is widget 4: keyword counts over a university's
// publications in the relational store.
func (s *Service) PublicationTopics(ctx context.Context, university string) ([]models.TopicCount, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.rel.PublicationTopicsForUniversity(ctx, university, widgetLimit)
	if err != nil {
		return nil, err
	}
	return orEmpty(rows), nil
}

// Spotlight serves widgets 5 and 6. It picks the faculty member with the most
// publications for keyword and lists their most cited publications. When no
// one matches, Found is false and the table is empty.
func (s *Service) Spotlight(ctx context.Context, keyword string) (*models.Spotlight, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	profile, err := s.rel.TopFacultyForKeyword(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		s.logger.Debug().Str("keyword", logging.SanitizeValue(keyword)).Msg("No faculty for spotlight keyword")
		return noMatchSpotlight(keyword), nil
	}

	pubs, err := s.rel.TopCitedPublicationsForFaculty(ctx, profile.FacultyID, widgetLimit)
	if err != nil {
		return nil, err
	}
	return &models.Spotlight{
		Keyword:      keyword,
		Found:        true,
		Faculty:      profile,
		Publications: orEmpty(pubs),
	}, nil
}

// Options returns the dropdown lists. The three reads run one after another
// under a single timeout, and a successful result is cached for
// OptionsCacheTTL. Callers must not modify the returned lists.
func (s *Service) Options(ctx context.Context) (*models.DropdownOptions, error) {
	if s.options != nil {
		if opts, ok := s.options.Get(optionsCacheKey); ok {
			return opts, nil
		}
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	universities, err := s.rel.UniversityNames(ctx)
	if err != nil {
		return nil, err
	}
	keywords, err := s.rel.KeywordNames(ctx)
	if err != nil {
		return nil, err
	}
	faculty, err := s.rel.FacultyNames(ctx)
	if err != nil {
		return nil, err
	}

	opts := &models.DropdownOptions{
		Universities: orEmpty(universities),
		Keywords:     orEmpty(keywords),
		Faculty:      orEmpty(faculty),
	}

	event := s.logger.Debug().
		Int("universities", len(universities)).
		Int("keywords", len(keywords)).
		Int("faculty", len(faculty)).
		Dur("elapsed", time.Since(start))
	if s.options != nil {
		s.options.Set(optionsCacheKey, opts)
		stats := s.options.Stats()
		event = event.Int64("cache_hits", stats.Hits).Int64("cache_misses", stats.Misses)
	}
	event.Msg("Loaded dropdown options")
	return opts, nil
}

// Defaults returns the initial control values.
func (s *Service) Defaults() models.DashboardDefaults {
	return models.DashboardDefaults{
		Limit:            s.cfg.DefaultLimit,
		Keyword:          s.cfg.DefaultKeyword,
		University:       s.cfg.DefaultUniversity,
		SpotlightKeyword: s.cfg.DefaultSpotlightKeyword,
		AllowedLimits:    append([]int(nil), AllowedLimits...),
	}
}
