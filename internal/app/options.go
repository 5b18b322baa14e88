package service

import (
	"github.com/okian/racelens/internal/adapters/repository"
	"github.com/okian/racelens/internal/domain/model"
	"github.com/okian/racelens/internal/domain/motivation"
	"github.com/okian/racelens/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataPath sets the dataset file read on Start.
func WithDataPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataPath = path
		}
	}
}

// WithDataFormat forces the dataset format instead of inferring it from the extension.
func WithDataFormat(f repository.Format) Option {
	return func(s *Service) {
		s.dataFormat = f
	}
}

// WithDataTable sets the table read from SQLite datasets.
func WithDataTable(table string) Option {
	return func(s *Service) {
		if table != "" {
			s.dataTable = table
		}
	}
}

// WithRunners serves the given records instead of reading a file.
func WithRunners(runners []model.Runner) Option {
	return func(s *Service) {
		s.preloaded = runners
	}
}

// WithPicker sets the motivational message picker.
func WithPicker(p motivation.Picker) Option {
	return func(s *Service) {
		if p != nil {
			s.picker = p
		}
	}
}

// WithStrictIntegrity makes Start fail when the dataset breaks the results-sheet rules.
func WithStrictIntegrity(strict bool) Option {
	return func(s *Service) {
		s.strict = strict
	}
}

// WithRaceName sets the display name of the race.
func WithRaceName(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.raceName = name
		}
	}
}
