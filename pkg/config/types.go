// Package config provides configuration loading and validation for logpuzzle.
package config

import (
	"regexp"
	"time"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// ToDir is the destination directory for downloaded images.
	// Empty means the URL list is printed instead.
	ToDir string `yaml:"todir,omitempty"`

	// Pattern is a regex matched against each log line.
	// The first capture group is the request path.
	Pattern string `yaml:"pattern"`

	// Sort selects how the deduplicated URLs are ordered (suffix|full).
	Sort SortMode `yaml:"sort"`

	Download DownloadConfig `yaml:"download"`

	// compiledPattern is the pre-compiled regex (populated during validation).
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled URL pattern.
func (c *Config) CompiledPattern() *regexp.Regexp {
	return c.compiledPattern
}

// SortMode determines the ordering of extracted URLs.
type SortMode string

const (
	// SortSuffix orders URLs by their trailing characters (default).
	SortSuffix SortMode = "suffix"
	// SortFull orders URLs by the whole string.
	SortFull SortMode = "full"
)

// ErrorPolicy determines what happens when a single download fails.
type ErrorPolicy string

const (
	// OnErrorAbort stops at the first failed download (default).
	OnErrorAbort ErrorPolicy = "abort"
	// OnErrorContinue records the failure and keeps downloading.
	OnErrorContinue ErrorPolicy = "continue"
)

// DownloadConfig controls the image fetcher.
type DownloadConfig struct {
	// Concurrency is the maximum number of parallel downloads.
	// Defaults to 1 (sequential).
	Concurrency int `yaml:"concurrency,omitempty"`

	// Timeout is the per-image HTTP request timeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	UserAgent string `yaml:"user_agent,omitempty"`

	// OnError is abort or continue. Defaults to abort.
	OnError ErrorPolicy `yaml:"on_error,omitempty"`
}
