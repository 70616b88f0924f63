package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logpuzzle/internal/log"
	"github.com/ccollicutt/logpuzzle/pkg/config"
	"github.com/ccollicutt/logpuzzle/pkg/fetch"
	"github.com/ccollicutt/logpuzzle/pkg/output"
	"github.com/ccollicutt/logpuzzle/pkg/puzzle"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ErrUsage is returned when the command line is malformed.
var ErrUsage = errors.New("usage error")

// PuzzleOptions holds command-line options for the root command.
type PuzzleOptions struct {
	ToDir      string
	ConfigFile string
	Output     string
	Verbose    bool

	// Overrides for config file values
	Sort            string
	Concurrency     int
	Timeout         time.Duration
	UserAgent       string
	ContinueOnError bool
}

// BindPuzzleFlags registers the extraction and download flags on cmd.
func BindPuzzleFlags(cmd *cobra.Command, opts *PuzzleOptions) {
	cmd.Flags().StringVarP(&opts.ToDir, "todir", "d", "", "Destination directory for downloaded images")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log download progress to stderr")

	cmd.Flags().StringVar(&opts.Sort, "sort", string(config.DefaultSort), "URL ordering (suffix|full)")
	cmd.Flags().IntVarP(&opts.Concurrency, "concurrency", "j", config.DefaultConcurrency, "Maximum parallel downloads")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", config.DefaultTimeout, "Per-image download timeout")
	cmd.Flags().StringVar(&opts.UserAgent, "user-agent", config.DefaultUserAgent, "User-Agent header for downloads")
	cmd.Flags().BoolVar(&opts.ContinueOnError, "continue-on-error", false, "Keep downloading after a failed image")
}

// LogfileArgs requires exactly one logfile argument and prints usage otherwise.
func LogfileArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return nil
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	if len(args) == 0 {
		return fmt.Errorf("%w: missing logfile argument", ErrUsage)
	}
	return fmt.Errorf("%w: expected one logfile argument, got %d", ErrUsage, len(args))
}

// RunPuzzle extracts the puzzle URLs of args[0] and prints or downloads them.
func RunPuzzle(cmd *cobra.Command, args []string, opts *PuzzleOptions) error {
	ExitCode = 0
	logfile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	formatter, err := output.New(opts.Output)
	if err != nil {
		return err
	}

	logger := log.New(cmd.ErrOrStderr(), opts.Verbose)

	extractor := puzzle.NewExtractor(
		puzzle.WithPattern(cfg.CompiledPattern()),
		puzzle.WithSortKey(puzzle.SortKey(cfg.Sort)),
		puzzle.WithLogger(logger),
	)

	urls, err := extractor.Extract(ctx, logfile)
	if err != nil {
		return fmt.Errorf("reading log file: %w", err)
	}

	report := output.NewReport(logfile, puzzle.HostFromFilename(logfile), urls)

	if cfg.ToDir != "" {
		fetcher := fetch.New(
			fetch.WithConcurrency(cfg.Download.Concurrency),
			fetch.WithErrorPolicy(fetch.ErrorPolicy(cfg.Download.OnError)),
			fetch.WithTimeout(cfg.Download.Timeout),
			fetch.WithUserAgent(cfg.Download.UserAgent),
			fetch.WithLogger(logger),
		)

		fr, err := fetcher.Fetch(ctx, urls, cfg.ToDir)
		if err != nil {
			return fmt.Errorf("downloading images: %w", err)
		}
		report.WithDownload(fr)
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.HasFailures() {
		ExitCode = 1
	}

	return nil
}

// resolveConfig loads the config file (or defaults) and applies flags the
// user set explicitly on top of it.
func resolveConfig(ctx context.Context, cmd *cobra.Command, opts *PuzzleOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.ConfigFile != "" {
		cfg, err = config.Load(ctx, opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("todir") {
		cfg.ToDir = opts.ToDir
	}
	if flags.Changed("sort") {
		cfg.Sort = config.SortMode(opts.Sort)
	}
	if flags.Changed("concurrency") {
		cfg.Download.Concurrency = opts.Concurrency
	}
	if flags.Changed("timeout") {
		cfg.Download.Timeout = opts.Timeout
	}
	if flags.Changed("user-agent") {
		cfg.Download.UserAgent = opts.UserAgent
	}
	if opts.ContinueOnError {
		cfg.Download.OnError = config.OnErrorContinue
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}
