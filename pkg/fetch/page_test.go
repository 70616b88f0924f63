package fetch

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// imgSources parses an HTML document and returns the src of every <img>
// element in document order.
func imgSources(t *testing.T, data []byte) []string {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}

	srcs := []string{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, a := range n.Attr {
				if a.Key == "src" {
					srcs = append(srcs, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return srcs
}

func TestImageName(t *testing.T) {
	tests := map[int]string{0: "img0.jpg", 1: "img1.jpg", 12: "img12.jpg"}
	for i, want := range tests {
		if got := ImageName(i); got != want {
			t.Errorf("ImageName(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestRenderPage(t *testing.T) {
	images := []string{"img0.jpg", "img1.jpg", "img2.jpg"}

	var buf bytes.Buffer
	if err := RenderPage(&buf, images); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("page should start with a doctype, got %q", out)
	}
	if !strings.Contains(out, "<body>") {
		t.Errorf("page missing body: %q", out)
	}

	got := imgSources(t, buf.Bytes())
	if !reflect.DeepEqual(got, images) {
		t.Errorf("img sources = %v, want %v", got, images)
	}
}

func TestRenderPage_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, nil); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}

	if got := imgSources(t, buf.Bytes()); len(got) != 0 {
		t.Errorf("img sources = %v, want none", got)
	}
	if strings.Contains(buf.String(), "<img") {
		t.Errorf("empty page contains img tag: %q", buf.String())
	}
}

func TestRenderPage_EscapesSource(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, []string{`a"b.jpg`}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}

	got := imgSources(t, buf.Bytes())
	if len(got) != 1 || got[0] != `a"b.jpg` {
		t.Errorf("img sources = %v, want [a\"b.jpg]", got)
	}
}

func TestWritePage(t *testing.T) {
	dir := t.TempDir()

	path, err := WritePage(dir, []string{"img0.jpg", "img1.jpg"})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if path != filepath.Join(dir, IndexFile) {
		t.Errorf("WritePage() path = %q, want %q", path, filepath.Join(dir, IndexFile))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}
	if got := imgSources(t, data); len(got) != 2 {
		t.Errorf("img sources = %v, want 2 entries", got)
	}
}

func TestWritePage_MissingDir(t *testing.T) {
	_, err := WritePage(filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Error("WritePage() expected error for missing directory")
	}
}
