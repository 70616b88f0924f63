package config

import "time"

// Default values for configuration.
const (
	DefaultPattern     = `GET (/\S*/puzzle/\S*)`
	DefaultSort        = SortSuffix
	DefaultConcurrency = 1
	DefaultTimeout     = 30 * time.Second
	DefaultUserAgent   = "logpuzzle"
	DefaultOnError     = OnErrorAbort
)

// DefaultConfig returns a configuration with sensible defaults.
// The result is not yet validated; use Default for a ready-to-use config.
func DefaultConfig() *Config {
	return &Config{
		Pattern: DefaultPattern,
		Sort:    DefaultSort,
		Download: DownloadConfig{
			Concurrency: DefaultConcurrency,
			Timeout:     DefaultTimeout,
			UserAgent:   DefaultUserAgent,
			OnError:     DefaultOnError,
		},
	}
}
