package puzzle

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ccollicutt/logpuzzle/pkg/parser"
)

// DefaultPattern matches a GET request whose path contains a /puzzle/ segment.
// The first capture group is the request path.
const DefaultPattern = `GET (/\S*/puzzle/\S*)`

var defaultPattern = regexp.MustCompile(DefaultPattern)

// Extractor finds puzzle URLs in log files.
type Extractor struct {
	pattern *regexp.Regexp
	sortKey SortKey
	logger  *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPattern overrides the request pattern. The first capture group must
// hold the request path. A nil pattern is ignored.
func WithPattern(re *regexp.Regexp) Option {
	return func(e *Extractor) {
		if re != nil {
			e.pattern = re
		}
	}
}

// WithSortKey sets the ordering policy (default SortBySuffix).
func WithSortKey(k SortKey) Option {
	return func(e *Extractor) {
		if k != "" {
			e.sortKey = k
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor using DefaultPattern and suffix ordering
// unless overridden by opts.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		pattern: defaultPattern,
		sortKey: SortBySuffix,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Extract reads the log file at path and returns its puzzle URLs,
// deduplicated and sorted. The host is derived from the file name.
func (e *Extractor) Extract(ctx context.Context, path string) ([]string, error) {
	source := parser.NewFileSource(path)
	defer source.Close()

	return e.ExtractFrom(ctx, source, HostFromFilename(path))
}

// ExtractFrom scans every line of source and returns the distinct URLs
// formed by prefixing host to each matched path, sorted by the extractor's
// sort key. A source without matches yields an empty, non-nil slice.
func (e *Extractor) ExtractFrom(ctx context.Context, source parser.LogSource, host string) ([]string, error) {
	seen := make(map[string]bool)
	urls := []string{}
	lines := 0

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lines++

		matches := e.pattern.FindStringSubmatch(line.Content)
		if len(matches) < 2 {
			continue
		}

		url := host + matches[1]
		if seen[url] {
			continue
		}
		seen[url] = true
		urls = append(urls, url)
	}

	SortURLs(urls, e.sortKey)

	e.logger.Debug("extracted puzzle urls",
		"host", host,
		"lines", lines,
		"urls", len(urls),
		"sort", string(e.sortKey),
	)

	return urls, nil
}

// HostFromFilename returns the host encoded in a log file name: the text
// after the first underscore of the base name. Names without an underscore
// are returned whole.
func HostFromFilename(path string) string {
	base := filepath.Base(path)
	if _, host, ok := strings.Cut(base, "_"); ok {
		return host
	}
	return base
}

// Extract is a convenience wrapper around NewExtractor().Extract.
func Extract(ctx context.Context, path string) ([]string, error) {
	urls, err := NewExtractor().Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extracting puzzle urls: %w", err)
	}
	return urls, nil
}
