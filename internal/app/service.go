// Package service provides the read-only race results service that
// implements the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/racelens/internal/adapters/repository"
	"github.com/okian/racelens/internal/domain/analytics"
	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/internal/domain/motivation"
	"github.com/okian/racelens/internal/domain/podium"
	"github.com/okian/racelens/internal/domain/results"
	"github.com/okian/racelens/internal/domain/search"
	"github.com/okian/racelens/internal/domain/types"
	"github.com/okian/racelens/pkg/logger"
	"github.com/okian/racelens/pkg/metrics"
)

const defaultRaceName = "10K San Martín"

// Service answers every query over one immutable results dataset.
type Service struct {
	mu sync.RWMutex

	// Configuration
	dataPath   string
	dataFormat repository.Format
	dataTable  string
	preloaded  []model.Runner
	picker     motivation.Picker
	strict     bool
	raceName   string

	// State built once by Start
	store      repository.Store
	index      *search.Index
	podiums    []podium.Podium
	overview   results.Overview
	violations []results.Violation
	loadedAt   time.Time
	started    bool

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataPath: "data/results.json",
		picker:   motivation.NewRandomPicker(0),
		raceName: defaultRaceName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset and builds the derived views. Calling it again
// after a successful start is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	var runners []model.Runner
	if s.preloaded != nil {
		runners = append([]model.Runner(nil), s.preloaded...)
		model.NormalizeGenders(runners)
	} else {
		s.logger.Info(ctx, "loading results dataset",
			logger.String("path", s.dataPath),
			logger.String("format", string(s.dataFormat)),
		)
		loaded, err := repository.Load(ctx, s.dataPath,
			repository.WithFormat(s.dataFormat),
			repository.WithTable(s.dataTable),
		)
		if err != nil {
			return err
		}
		runners = loaded
	}

	violations := results.Verify(runners)
	for _, v := range violations {
		metrics.RecordIntegrityViolation(v.Rule)
		s.logger.Warn(ctx, "dataset integrity violation",
			logger.String("rule", v.Rule),
			logger.String("detail", v.Detail),
		)
	}
	if s.strict && len(violations) > 0 {
		return fmt.Errorf("%w: %d violations, first: %s", ErrIntegrity, len(violations), violations[0])
	}

	s.store = repository.NewMemoryStore(runners)
	all := s.store.All(ctx)
	s.index = search.New(all)
	s.podiums = podium.Build(all)
	s.overview = results.Summarize(all)
	s.violations = violations
	s.loadedAt = time.Now()
	s.started = true

	metrics.UpdateDataset(s.overview.TotalRunners, len(s.overview.Categories), s.loadedAt)
	s.logger.Info(ctx, "race results service started",
		logger.String("race", s.raceName),
		logger.Int("runners", s.overview.TotalRunners),
		logger.Int("categories", len(s.overview.Categories)),
		logger.Int("podiums", len(s.podiums)),
		logger.Int("violations", len(violations)),
	)
	return nil
}

// Stop marks the service as stopped. The dataset is dropped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.store = nil
	s.index = nil
	s.podiums = nil
	s.overview = results.Overview{}
	s.violations = nil
	s.started = false
	s.logger.Info(context.Background(), "race results service stopped")
}

// RaceName returns the display name of the race.
func (s *Service) RaceName() string { return s.raceName }

func (s *Service) ready() error {
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// Search returns up to ten runners whose folded name contains the folded query.
func (s *Service) Search(ctx context.Context, query string) (search.Suggestions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return search.Suggestions{}, err
	}

	start := time.Now()
	out := s.index.Search(query)
	metrics.RecordQueryLatency("search", sinceMs(start))

	switch {
	case !out.Queried:
		metrics.RecordSearch(metrics.SearchEmpty, 0)
	case out.NoMatches():
		metrics.RecordSearch(metrics.SearchNoMatch, 0)
	default:
		metrics.RecordSearch(metrics.SearchMatch, len(out.Runners))
	}
	s.logger.Debug(ctx, "search",
		logger.String("query", query),
		logger.Int("matches", len(out.Runners)),
	)
	return out, nil
}

// Runner returns the runner at an overall position.
func (s *Service) Runner(ctx context.Context, position int) (model.Runner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return model.Runner{}, err
	}
	return s.store.ByPosition(ctx, position)
}

// Analyze builds the analysis report of the runner at an overall position.
func (s *Service) Analyze(ctx context.Context, position int) (*analytics.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	r, err := s.store.ByPosition(ctx, position)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report, err := analytics.Analyze(&r, s.store.All(ctx), s.picker)
	metrics.RecordQueryLatency("analyze", sinceMs(start))
	if err != nil {
		metrics.RecordAnalysisError(analysisErrorReason(err))
		s.logger.Error(ctx, "runner analysis failed",
			logger.Int("position", position),
			logger.Error(err),
		)
		return nil, err
	}
	metrics.RecordAnalysis()
	return report, nil
}

// Podiums returns the top five of every category and gender group.
func (s *Service) Podiums(ctx context.Context) ([]podium.Podium, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	metrics.RecordPodiumBuild()
	s.logger.Debug(ctx, "podiums", logger.Int("groups", len(s.podiums)))
	return s.podiums, nil
}

// Results returns the full results table filtered by q.
func (s *Service) Results(ctx context.Context, q results.Query) ([]types.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	start := time.Now()
	matched, err := results.Filter(s.store.All(ctx), q)
	if err != nil {
		return nil, err
	}
	metrics.RecordQueryLatency("results", sinceMs(start))
	metrics.RecordFilterQuery(len(matched))
	return types.Rows(matched), nil
}

// Categories returns the distinct normalized categories in display order.
func (s *Service) Categories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.overview.Categories, nil
}

// Overview returns the landing-page summary.
func (s *Service) Overview(_ context.Context) (results.Overview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return results.Overview{}, err
	}
	return s.overview, nil
}

// Violations returns the integrity violations found at load.
func (s *Service) Violations(_ context.Context) ([]results.Violation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.violations, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":  s.started,
		"raceName": s.raceName,
		"dataPath": s.dataPath,
	}
	if s.started {
		stats["totalRunners"] = s.overview.TotalRunners
		stats["categories"] = len(s.overview.Categories)
		stats["podiums"] = len(s.podiums)
		stats["violations"] = len(s.violations)
		stats["loadedAt"] = s.loadedAt.UTC().Format(time.RFC3339)
	}
	return stats
}

func analysisErrorReason(err error) string {
	switch {
	case errors.Is(err, analytics.ErrEmptyCategory):
		return "empty_category"
	case errors.Is(err, analytics.ErrNoCategoryWinner):
		return "no_category_winner"
	case errors.Is(err, analytics.ErrInvalidTime):
		return "invalid_time"
	case errors.Is(err, analytics.ErrEmptyStore):
		return "empty_store"
	}
	return "unknown"
}

func sinceMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
