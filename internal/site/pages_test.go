package site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestURLForPath(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"index.md", "/"},
		{"docs/index.md", "/docs"},
		{"docs/guides/overview.md", "/docs/guides/overview"},
		{"docs/nextjs.md", "/docs/nextjs"},
	}
	for _, tt := range tests {
		got := URLForPath(tt.input)
		if got != tt.want {
			t.Errorf("URLForPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOutputPathForURL(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/docs", "docs/index.html"},
		{"/docs/guides/overview", "docs/guides/overview/index.html"},
		{"/docs/guides/overview/", "docs/guides/overview/index.html"},
	}
	for _, tt := range tests {
		got := OutputPathForURL(tt.input)
		if got != tt.want {
			t.Errorf("OutputPathForURL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		content string
		relPath string
		want    string
	}{
		{"# My Title\n\nSome text", "file.md", "My Title"},
		{"\n\n# Second Line Title\n", "file.md", "Second Line Title"},
		{"No heading here", "docs/fallback.md", "fallback"},
		{"## Not H1\n# H1 Title", "f.md", "H1 Title"},
	}
	for _, tt := range tests {
		got := extractTitle(tt.content, tt.relPath)
		if got != tt.want {
			t.Errorf("extractTitle(%q, %q) = %q, want %q", tt.content, tt.relPath, got, tt.want)
		}
	}
}

func TestMatchesInclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"docs/a.md", nil, true},
		{"docs/a.md", []string{"**/*.md"}, true},
		{"docs/a.md", []string{"guides/**"}, false},
		{"a.md", []string{"*.md"}, true},
	}
	for _, tt := range tests {
		got := MatchesInclude(tt.path, tt.patterns)
		if got != tt.want {
			t.Errorf("MatchesInclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestMatchesExclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"docs/a.md", nil, false},
		{"docs/_partial.md", []string{"**/_*"}, true},
		{"_partial.md", []string{"**/_*"}, true},
		{"drafts/wip.md", []string{"drafts/**"}, true},
		{"docs/drafts.md", []string{"drafts/**"}, false},
	}
	for _, tt := range tests {
		got := MatchesExclude(tt.path, tt.patterns)
		if got != tt.want {
			t.Errorf("MatchesExclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestCollectPages(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "index.md"), "# Home")
	writeTestFile(t, filepath.Join(dir, "docs", "guides", "overview.md"), "# Overview")
	writeTestFile(t, filepath.Join(dir, "docs", "_partial.md"), "# Partial")
	writeTestFile(t, filepath.Join(dir, "drafts", "wip.md"), "# WIP")
	writeTestFile(t, filepath.Join(dir, "docs", "notes.txt"), "not markdown")

	pages, err := CollectPages(dir, []string{"**/*.md"}, []string{"**/_*", "drafts/**"})
	if err != nil {
		t.Fatalf("CollectPages error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("pages = %d, want 2: %+v", len(pages), pages)
	}
	if pages[0].URL != "/" || pages[0].Title != "Home" {
		t.Errorf("pages[0] = %q %q, want / Home", pages[0].URL, pages[0].Title)
	}
	if pages[1].URL != "/docs/guides/overview" || pages[1].SourcePath != "docs/guides/overview.md" {
		t.Errorf("pages[1] = %q from %q", pages[1].URL, pages[1].SourcePath)
	}
}

func TestCollectPagesMissingDir(t *testing.T) {
	_, err := CollectPages(filepath.Join(t.TempDir(), "nope"), nil, nil)
	if err == nil {
		t.Error("CollectPages should fail for a missing directory")
	}
}

func TestLoadPage(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "index.md"), "# Home")
	writeTestFile(t, filepath.Join(dir, "docs", "nextjs", "index.md"), "# Next.js")
	writeTestFile(t, filepath.Join(dir, "docs", "guides", "overview.md"), "# Overview")

	tests := []struct {
		url, wantTitle, wantURL string
	}{
		{"/", "Home", "/"},
		{"/docs/nextjs", "Next.js", "/docs/nextjs"},
		{"/docs/nextjs/", "Next.js", "/docs/nextjs"},
		{"/docs/guides/overview", "Overview", "/docs/guides/overview"},
	}
	for _, tt := range tests {
		page, err := LoadPage(dir, tt.url)
		if err != nil {
			t.Errorf("LoadPage(%q) error: %v", tt.url, err)
			continue
		}
		if page.Title != tt.wantTitle || page.URL != tt.wantURL {
			t.Errorf("LoadPage(%q) = %q %q, want %q %q", tt.url, page.Title, page.URL, tt.wantTitle, tt.wantURL)
		}
	}

	if _, err := LoadPage(dir, "/docs/missing"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadPage(missing) error = %v, want os.ErrNotExist", err)
	}
	if _, err := LoadPage(dir, "/../../etc/passwd"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadPage(traversal) error = %v, want os.ErrNotExist", err)
	}
}

// writeTestFile is a helper that creates a file with intermediate directories.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
