package site

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"strings"
)

// maxSearchContent caps the indexed body text per page.
const maxSearchContent = 2000

// SearchEntry represents a single searchable page in the documentation.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex builds one search entry per page.
func BuildSearchIndex(pages []Page) ([]SearchEntry, error) {
	entries := make([]SearchEntry, 0, len(pages))
	for _, p := range pages {
		entry, err := parseMarkdownForSearch(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseMarkdownForSearch extracts summary and content from a page. The
// summary is the first paragraph line after the title.
func parseMarkdownForSearch(p Page) (SearchEntry, error) {
	entry := SearchEntry{
		Path:  p.URL,
		Title: p.Title,
	}

	scanner := bufio.NewScanner(bytes.NewReader(p.Content))
	var lines []string
	inFence := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if line == "" {
			continue
		}
		if !inFence && strings.HasPrefix(line, "#") {
			continue
		}
		if entry.Summary == "" && !inFence {
			entry.Summary = line
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return SearchEntry{}, err
	}

	content := strings.Join(lines, " ")
	if len(content) > maxSearchContent {
		content = strings.ToValidUTF8(content[:maxSearchContent], "")
	}
	entry.Content = content

	if entry.Title == "" {
		entry.Title = p.SourcePath
	}
	return entry, nil
}

// MarshalSearchIndex encodes entries the way WriteSearchIndex stores them.
func MarshalSearchIndex(entries []SearchEntry) ([]byte, error) {
	return json.MarshalIndent(entries, "", "  ")
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := MarshalSearchIndex(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
