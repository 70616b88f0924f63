package output

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ccollicutt/logpuzzle/pkg/fetch"
)

func TestJSONFormatter_Format(t *testing.T) {
	report := NewReport("animal_code.google.com", "code.google.com", []string{
		"code.google.com/puzzle/a-baaa.jpg",
	})

	var buf bytes.Buffer
	if err := NewJSONFormatter().Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed["host"] != "code.google.com" {
		t.Errorf("host = %v, want code.google.com", parsed["host"])
	}
	if urls, ok := parsed["urls"].([]interface{}); !ok || len(urls) != 1 {
		t.Errorf("urls = %v, want 1 entry", parsed["urls"])
	}
	if _, ok := parsed["download"]; ok {
		t.Error("download should be omitted when nothing was fetched")
	}
}

func TestJSONFormatter_Format_Download(t *testing.T) {
	report := NewReport("log", "h", []string{"h/a.jpg", "h/b.jpg", "h/c.jpg"}).WithDownload(&fetch.Report{
		Dir: "/tmp/out",
		Results: []*fetch.Result{
			{URL: "http://h/a.jpg", StatusCode: 200, Bytes: 3},
			{URL: "http://h/b.jpg", Error: errors.New("request failed")},
			nil,
		},
	})

	var buf bytes.Buffer
	if err := NewJSONFormatter().Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var parsed Report
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed.Download == nil {
		t.Fatal("download missing")
	}
	if parsed.Download.Succeeded != 1 {
		t.Errorf("Succeeded = %d, want 1", parsed.Download.Succeeded)
	}
	if len(parsed.Download.Images) != 1 || parsed.Download.Images[0].File != "img0.jpg" {
		t.Errorf("Images = %+v", parsed.Download.Images)
	}
	if len(parsed.Download.Failures) != 1 || parsed.Download.Failures[0].Index != 1 {
		t.Errorf("Failures = %+v", parsed.Download.Failures)
	}
	if !parsed.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
}
