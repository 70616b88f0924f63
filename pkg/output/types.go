// Package output provides formatting of extracted puzzle URLs and download summaries.
package output

import (
	"fmt"
	"time"

	"github.com/ccollicutt/logpuzzle/pkg/fetch"
)

// Report is the complete result of one run.
type Report struct {
	// Source is the log file that was scanned.
	Source string `json:"source"`

	// Host is the hostname derived from the log file name.
	Host string `json:"host"`

	// URLs is the deduplicated, ordered URL list.
	URLs []string `json:"urls"`

	// Download is set when images were fetched.
	Download *Download `json:"download,omitempty"`
}

// Download summarises a fetch into a destination directory.
type Download struct {
	Dir       string     `json:"dir"`
	IndexPath string     `json:"index,omitempty"`
	Succeeded int        `json:"succeeded"`
	Failures  []Failure  `json:"failures,omitempty"`
	Images    []ImageRef `json:"images"`
}

// ImageRef maps a downloaded file back to its URL.
type ImageRef struct {
	File     string        `json:"file"`
	URL      string        `json:"url"`
	Bytes    int64         `json:"bytes"`
	Duration time.Duration `json:"duration"`
}

// Failure describes a download that did not succeed.
type Failure struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
	Error string `json:"error"`
}

// NewReport creates a Report for an extraction without downloads.
func NewReport(source, host string, urls []string) *Report {
	return &Report{
		Source: source,
		Host:   host,
		URLs:   urls,
	}
}

// WithDownload attaches the summary of a fetch to the report.
func (r *Report) WithDownload(fr *fetch.Report) *Report {
	if fr == nil {
		return r
	}

	d := &Download{
		Dir:       fr.Dir,
		IndexPath: fr.IndexPath,
		Succeeded: fr.Succeeded(),
		Images:    []ImageRef{},
	}
	for i, res := range fr.Results {
		if res == nil {
			continue
		}
		if res.Success() {
			d.Images = append(d.Images, ImageRef{
				File:     fetch.ImageName(i),
				URL:      res.URL,
				Bytes:    res.Bytes,
				Duration: res.Duration,
			})
			continue
		}
		msg := fmt.Sprintf("status %d", res.StatusCode)
		if res.Error != nil {
			msg = res.Error.Error()
		}
		d.Failures = append(d.Failures, Failure{
			Index: i,
			URL:   res.URL,
			Error: msg,
		})
	}

	r.Download = d
	return r
}

// HasFailures returns true if any download failed.
func (r *Report) HasFailures() bool {
	return r.Download != nil && len(r.Download.Failures) > 0
}
