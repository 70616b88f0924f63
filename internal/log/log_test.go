package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Info("downloaded image", "index", 0)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "downloaded image") || !strings.Contains(out, "index=0") {
		t.Errorf("info line missing: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered: %q", out)
	}
}

func TestNew_Quiet(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Info("downloaded image")
	logger.Warn("download failed", "url", "http://h/a.jpg")

	out := buf.String()
	if strings.Contains(out, "downloaded image") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "download failed") {
		t.Errorf("warn line missing: %q", out)
	}
}
