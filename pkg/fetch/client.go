// Package fetch downloads puzzle images and writes the index page that shows them.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Defaults for a single image download.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "logpuzzle"
	DefaultScheme    = "http://"
)

// Client downloads single images over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new download client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// DownloadOptions configures a single download request.
type DownloadOptions struct {
	UserAgent string
	Timeout   time.Duration // Request timeout (uses DefaultTimeout if zero)
}

// Result is the outcome of downloading one URL.
type Result struct {
	// Index is the position of the URL in the ordered list.
	Index int

	// URL is the requested URL, including scheme.
	URL string

	// Path is the local file the body was written to.
	Path string

	StatusCode int
	Bytes      int64
	Duration   time.Duration
	Error      error
}

// Success returns true if the image was downloaded and written.
func (r *Result) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusError reports a download that completed with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
}

// EnsureScheme prefixes DefaultScheme to urls that have no scheme.
func EnsureScheme(url string) string {
	if strings.Contains(url, "://") {
		return url
	}
	return DefaultScheme + url
}

// Download fetches url and writes the response body to path, replacing
// any existing file. The file is only created once a 2xx response arrived.
func (c *Client) Download(ctx context.Context, url, path string, opts DownloadOptions) *Result {
	start := time.Now()
	res := &Result{URL: url, Path: path}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		res.Error = fmt.Errorf("failed to create request: %w", err)
		res.Duration = time.Since(start)
		return res
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		res.Error = fmt.Errorf("request failed: %w", err)
		res.Duration = time.Since(start)
		return res
	}
	defer httpResp.Body.Close()

	res.StatusCode = httpResp.StatusCode
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		res.Error = &StatusError{URL: url, StatusCode: httpResp.StatusCode}
		res.Duration = time.Since(start)
		return res
	}

	n, err := writeFile(path, httpResp.Body)
	res.Bytes = n
	res.Duration = time.Since(start)
	if err != nil {
		res.Error = err
	}

	return res
}

func writeFile(path string, r io.Reader) (int64, error) {
	f, err := os.Create(path) // #nosec G304 -- path is built from the destination directory
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		return n, fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return n, fmt.Errorf("closing %s: %w", path, err)
	}
	return n, nil
}
