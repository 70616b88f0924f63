package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrorPolicy determines how Fetch reacts to a failed download.
type ErrorPolicy string

const (
	// AbortOnError stops at the first failure and skips the index page.
	AbortOnError ErrorPolicy = "abort"
	// ContinueOnError records failures, downloads the rest and writes
	// an index page of the successful images.
	ContinueOnError ErrorPolicy = "continue"
)

// Fetcher downloads an ordered URL list into a directory.
type Fetcher struct {
	client      *Client
	concurrency int
	policy      ErrorPolicy
	opts        DownloadOptions
	logger      *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the download client.
func WithClient(c *Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithConcurrency sets the maximum number of parallel downloads.
// Default is 1, which downloads strictly in list order.
func WithConcurrency(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// WithErrorPolicy sets the failure policy (default AbortOnError).
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(f *Fetcher) {
		if p != "" {
			f.policy = p
		}
	}
}

// WithTimeout sets the per-image request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.opts.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.opts.UserAgent = ua
	}
}

// WithLogger sets the logger for download progress.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// New creates a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      NewClient(),
		concurrency: 1,
		policy:      AbortOnError,
		opts: DownloadOptions{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	return f
}

// Report describes a completed Fetch.
type Report struct {
	// Dir is the destination directory.
	Dir string

	// IndexPath is the written index page, empty if it was not written.
	IndexPath string

	// Results holds one entry per URL, aligned with the input list.
	// Entries are nil for downloads never started because of an abort.
	Results []*Result
}

// Succeeded returns the number of images downloaded.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res != nil && res.Success() {
			n++
		}
	}
	return n
}

// Failed returns the results of downloads that failed, in index order.
func (r *Report) Failed() []*Result {
	var failed []*Result
	for _, res := range r.Results {
		if res != nil && !res.Success() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Fetch downloads urls[i] to ImageName(i) inside destDir, creating the
// directory if needed, then writes IndexFile listing the downloaded images
// in index order. URLs without a scheme are fetched over http.
//
// Under AbortOnError the first failure cancels outstanding downloads and is
// returned; the index page is not written and the directory may be partially
// populated. The returned Report is non-nil whenever downloading started.
func (f *Fetcher) Fetch(ctx context.Context, urls []string, destDir string) (*Report, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating destination directory: %w", err)
	}

	report := &Report{
		Dir:     destDir,
		Results: make([]*Result, len(urls)),
	}

	f.logger.Info("downloading images",
		"count", len(urls),
		"dir", destDir,
		"concurrency", f.concurrency,
		"on_error", string(f.policy),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res := f.client.Download(gctx, EnsureScheme(url), filepath.Join(destDir, ImageName(i)), f.opts)
			res.Index = i
			report.Results[i] = res

			if res.Success() {
				f.logger.Info("downloaded image",
					"index", i,
					"url", res.URL,
					"bytes", res.Bytes,
					"duration", res.Duration,
				)
				return nil
			}

			if f.policy == AbortOnError {
				return fmt.Errorf("downloading %s to %s: %w", res.URL, ImageName(i), res.Error)
			}
			f.logger.Warn("download failed", "index", i, "url", res.URL, "error", res.Error)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	var images []string
	for i, res := range report.Results {
		if res != nil && res.Success() {
			images = append(images, ImageName(i))
		}
	}

	indexPath, err := WritePage(destDir, images)
	if err != nil {
		return report, err
	}
	report.IndexPath = indexPath

	f.logger.Info("wrote index page",
		"path", indexPath,
		"images", len(images),
		"failed", len(report.Failed()),
	)

	return report, nil
}
