package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/racelens/internal/domain/model"
)

// ParseFormat maps a config value or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Load reads the results dataset at path. Records are returned in file
// order; no schema validation is applied beyond decoding.
func Load(ctx context.Context, path string, opts ...Option) ([]model.Runner, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	format := o.format
	if format == FormatAuto {
		f, err := ParseFormat(filepath.Ext(path))
		if err != nil {
			return nil, err
		}
		if f == FormatAuto {
			return nil, fmt.Errorf("%w: cannot infer format of %q", ErrUnsupportedFormat, path)
		}
		format = f
	}

	var (
		runners []model.Runner
		err     error
	)
	switch format {
	case FormatJSON:
		runners, err = loadJSON(path)
	case FormatYAML:
		runners, err = loadYAML(path)
	case FormatSQLite:
		runners, err = loadSQLite(ctx, path, o.table)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	if len(runners) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataset, path)
	}
	model.NormalizeGenders(runners)
	return runners, nil
}

func loadJSON(path string) ([]model.Runner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var runners []model.Runner
	if err := json.Unmarshal(data, &runners); err != nil {
		return nil, err
	}
	return runners, nil
}

func loadYAML(path string) ([]model.Runner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var runners []model.Runner
	if err := yaml.Unmarshal(data, &runners); err != nil {
		return nil, err
	}
	return runners, nil
}
