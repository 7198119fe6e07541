package site

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Page is one markdown document of the content tree.
type Page struct {
	SourcePath string // relative to the content dir, slash separated
	URL        string // site path, e.g. "/docs/guides/overview"
	Title      string
	Content    []byte
}

// CollectPages reads every markdown file under contentDir that matches the
// include patterns and none of the exclude patterns. Pages are sorted by URL.
func CollectPages(contentDir string, include, exclude []string) ([]Page, error) {
	var pages []Page
	err := filepath.WalkDir(contentDir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}
		rel, err := filepath.Rel(contentDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !MatchesInclude(rel, include) || MatchesExclude(rel, exclude) {
			return nil
		}

		content, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		pages = append(pages, Page{
			SourcePath: rel,
			URL:        URLForPath(rel),
			Title:      extractTitle(string(content), rel),
			Content:    content,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content dir: %w", err)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].URL < pages[j].URL })
	return pages, nil
}

// LoadPage reads the markdown file serving urlPath, trying "<path>.md" and
// then "<path>/index.md". It returns os.ErrNotExist when neither exists.
func LoadPage(contentDir, urlPath string) (Page, error) {
	clean := strings.Trim(path.Clean("/"+urlPath), "/")
	var candidates []string
	if clean == "" {
		candidates = []string{"index.md"}
	} else {
		candidates = []string{clean + ".md", clean + "/index.md"}
	}
	for _, rel := range candidates {
		content, err := os.ReadFile(filepath.Join(contentDir, filepath.FromSlash(rel)))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Page{}, err
		}
		return Page{
			SourcePath: rel,
			URL:        URLForPath(rel),
			Title:      extractTitle(string(content), rel),
			Content:    content,
		}, nil
	}
	return Page{}, os.ErrNotExist
}

// URLForPath maps a content-relative markdown path to its site URL.
// "index.md" maps to "/", "a/index.md" to "/a" and "a/b.md" to "/a/b".
func URLForPath(rel string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), ".md")
	if rel == "index" {
		return "/"
	}
	rel = strings.TrimSuffix(rel, "/index")
	return "/" + rel
}

// OutputPathForURL returns the output file, relative to the output dir, that
// serves url.
func OutputPathForURL(url string) string {
	trimmed := strings.Trim(url, "/")
	if trimmed == "" {
		return "index.html"
	}
	return trimmed + "/index.html"
}

// extractTitle pulls the first # heading from markdown content, or falls back to the filename.
func extractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(path.Base(relPath), ".md")
}

// MatchesInclude returns true if the given relative path matches any of the
// include patterns. If patterns is empty, everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks relPath, and its base name, against doublestar patterns.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := path.Base(normalized)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
