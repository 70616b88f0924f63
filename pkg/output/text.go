package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as plain text.
//
// Without a download it prints the URL list, one per line, and nothing else,
// so the output can be piped into other tools.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if report.Download != nil {
		return f.formatDownload(report, w)
	}

	for _, url := range report.URLs {
		if _, err := fmt.Fprintln(w, url); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatDownload(report *Report, w io.Writer) error {
	d := report.Download
	if _, err := fmt.Fprintf(w, "Downloaded %d of %d images to %s\n", d.Succeeded, len(report.URLs), d.Dir); err != nil {
		return err
	}

	for _, fail := range d.Failures {
		if _, err := fmt.Fprintf(w, "  - img%d: %s: %s\n", fail.Index, fail.URL, fail.Error); err != nil {
			return err
		}
	}

	if d.IndexPath != "" {
		if _, err := fmt.Fprintf(w, "Index: %s\n", d.IndexPath); err != nil {
			return err
		}
	}
	return nil
}
