package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the validated default configuration.
func Default() (*Config, error) {
	cfg := DefaultConfig()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a configuration for errors, fills in zero values
// with defaults and compiles the URL pattern.
func Validate(cfg *Config) error {
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}

	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return fmt.Errorf("pattern: invalid regex: %w", err)
	}
	if re.NumSubexp() < 1 {
		return errors.New("pattern: must have at least one capture group for the request path")
	}
	cfg.compiledPattern = re

	switch cfg.Sort {
	case "":
		cfg.Sort = DefaultSort
	case SortSuffix, SortFull:
	default:
		return fmt.Errorf("sort: invalid value %q (must be suffix or full)", cfg.Sort)
	}

	if err := validateDownload(&cfg.Download); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	return nil
}

func validateDownload(d *DownloadConfig) error {
	if d.Concurrency < 0 {
		return fmt.Errorf("concurrency must be >= 1, got %d", d.Concurrency)
	}
	if d.Concurrency == 0 {
		d.Concurrency = DefaultConcurrency
	}

	if d.Timeout < 0 {
		return fmt.Errorf("timeout must be positive, got %s", d.Timeout)
	}
	if d.Timeout == 0 {
		d.Timeout = DefaultTimeout
	}

	if d.UserAgent == "" {
		d.UserAgent = DefaultUserAgent
	}

	switch d.OnError {
	case "":
		d.OnError = DefaultOnError
	case OnErrorAbort, OnErrorContinue:
	default:
		return fmt.Errorf("invalid on_error %q (must be abort or continue)", d.OnError)
	}

	return nil
}
