// Package main provides the racelens command line: the same queries as the
// HTTP service, rendered as terminal tables.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/racelens/internal/adapters/repository"
	app "github.com/okian/racelens/internal/app"
	"github.com/okian/racelens/internal/config"
	"github.com/okian/racelens/internal/domain/motivation"
	"github.com/okian/racelens/internal/domain/results"
	"github.com/okian/racelens/internal/report"
	"github.com/okian/racelens/pkg/logger"
)

// errViolations makes `check` exit non-zero.
var errViolations = errors.New("dataset has integrity violations")

type options struct {
	data     string
	format   string
	table    string
	logLevel string
	seed     int64

	name     string
	category string
	gender   string
}

func main() {
	if err := logger.InitWithWriter(os.Stderr); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "racelens",
		Short:         "Query a 10K race results sheet",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	defaults := config.New()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.data, "data", defaults.DataPath, "results dataset (json, yaml or sqlite)")
	flags.StringVar(&opts.format, "format", defaults.DataFormat, "dataset format; empty infers it from the extension")
	flags.StringVar(&opts.table, "table", defaults.DataTable, "table holding the results in sqlite datasets")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newAnalyzeCmd(opts))
	rootCmd.AddCommand(newPodiumsCmd(opts))
	rootCmd.AddCommand(newResultsCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))
	return rootCmd
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find runners by name, ignoring case and accents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := startService(cmd, opts)
			if err != nil {
				return err
			}
			out, err := svc.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return report.Suggestions(cmd.OutOrStdout(), out)
		},
	}
}

func newAnalyzeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <position>",
		Short: "Show the placement analysis of the runner at an overall position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil || position <= 0 {
				return fmt.Errorf("invalid position %q: must be a positive integer", args[0])
			}
			svc, err := startService(cmd, opts)
			if err != nil {
				return err
			}
			rep, err := svc.Analyze(cmd.Context(), position)
			if err != nil {
				return err
			}
			return report.Analysis(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "motivational message seed; 0 seeds from the clock")
	return cmd
}

func newPodiumsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "podiums",
		Short: "Show the top five of every category and gender",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := startService(cmd, opts)
			if err != nil {
				return err
			}
			boards, err := svc.Podiums(cmd.Context())
			if err != nil {
				return err
			}
			return report.Podiums(cmd.OutOrStdout(), boards)
		},
	}
}

func newResultsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show the full results table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := startService(cmd, opts)
			if err != nil {
				return err
			}
			rows, err := svc.Results(cmd.Context(), results.Query{
				Name:     opts.name,
				Category: opts.category,
				Gender:   opts.gender,
			})
			if err != nil {
				return err
			}
			return report.Results(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringVar(&opts.name, "name", "", "name substring filter")
	cmd.Flags().StringVar(&opts.category, "category", results.All, "category filter")
	cmd.Flags().StringVar(&opts.gender, "gender", results.All, "gender filter (all, Masculino, Femenino)")
	return cmd
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the dataset against the results-sheet rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := startService(cmd, opts)
			if err != nil {
				return err
			}
			vs, err := svc.Violations(cmd.Context())
			if err != nil {
				return err
			}
			if err := report.Violations(cmd.OutOrStdout(), vs); err != nil {
				return err
			}
			if len(vs) > 0 {
				return fmt.Errorf("%w: %d", errViolations, len(vs))
			}
			return nil
		},
	}
}

func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <out.db>",
		Short: "Copy the dataset into a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := resolveOptions(cmd, opts); err != nil {
				return err
			}
			format, err := repository.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			runners, err := repository.Load(cmd.Context(), opts.data,
				repository.WithFormat(format),
				repository.WithTable(opts.table),
			)
			if err != nil {
				return err
			}
			if err := repository.WriteSQLite(cmd.Context(), args[0], runners, repository.WithTable(opts.table)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d runners to %s\n", len(runners), args[0])
			return err
		},
	}
}

// resolveOptions layers the RACELENS_* configuration under every flag left
// at its default and applies the resulting log level.
func resolveOptions(cmd *cobra.Command, opts *options) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	applyStringConfig(cmd, "data", &opts.data, cfg.DataPath)
	applyStringConfig(cmd, "format", &opts.format, cfg.DataFormat)
	applyStringConfig(cmd, "table", &opts.table, cfg.DataTable)
	applyInt64Config(cmd, "seed", &opts.seed, cfg.MotivationSeed)
	// The service defaults to info; the CLI stays at warn unless log_level
	// was configured explicitly.
	if cfg.LogLevel != config.New().LogLevel {
		applyStringConfig(cmd, "log-level", &opts.logLevel, cfg.LogLevel)
	}

	if err := logger.SetLevelString(opts.logLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// startService loads the dataset named by the resolved options.
func startService(cmd *cobra.Command, opts *options) (*app.Service, error) {
	cfg, err := resolveOptions(cmd, opts)
	if err != nil {
		return nil, err
	}

	format, err := repository.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	svc := app.New(
		app.WithLogger(logger.Named("cli")),
		app.WithDataPath(opts.data),
		app.WithDataFormat(format),
		app.WithDataTable(opts.table),
		app.WithRaceName(cfg.RaceName),
		app.WithStrictIntegrity(cfg.StrictIntegrity),
		app.WithPicker(motivation.NewRandomPicker(opts.seed)),
	)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := svc.Start(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target *string, value string) {
	if cmd.Flags().Changed(name) || value == "" {
		return
	}
	*target = value
}

func applyInt64Config(cmd *cobra.Command, name string, target *int64, value int64) {
	if cmd.Flags().Changed(name) || value == 0 {
		return
	}
	*target = value
}
