// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and RACELENS_* env vars.
// - External errors are wrapped with this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DataPath points at the results dataset (JSON, YAML or SQLite).
	DataPath string `koanf:"data_path"`

	// DataFormat forces the dataset format; empty infers it from DataPath.
	DataFormat string `koanf:"data_format"`

	// DataTable names the SQLite table holding the results.
	DataTable string `koanf:"data_table"`

	// RaceName is shown by the site and the overview endpoint.
	RaceName string `koanf:"race_name"`

	// MotivationSeed seeds the closing-message picker; 0 seeds from the clock.
	MotivationSeed int64 `koanf:"motivation_seed"`

	// StrictIntegrity makes startup fail when the dataset breaks the
	// results-sheet invariants instead of only logging them.
	StrictIntegrity bool `koanf:"strict_integrity"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		Addr:       ":9080",
		DataPath:   "data/results.json",
		DataFormat: "",
		DataTable:  "results",
		RaceName:   "10K San Martín",
	}
}
