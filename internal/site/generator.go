package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ternsecure/docsite/internal/config"
	"github.com/ternsecure/docsite/internal/navigation"
	"github.com/ternsecure/docsite/internal/progress"
	"github.com/ternsecure/docsite/internal/sidebar"
)

// Generator converts the markdown content tree into a static HTML site.
type Generator struct {
	ContentDir string
	OutputDir  string
	Include    []string
	Exclude    []string
	Title      string
	BaseURL    string
	Tabs       []navigation.Tab
	Navigation []navigation.Section
	Reporter   progress.Reporter
}

// NewGenerator creates a Generator from a loaded configuration.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		ContentDir: cfg.ContentDir,
		OutputDir:  cfg.OutputDir,
		Include:    cfg.Include,
		Exclude:    cfg.Exclude,
		Title:      cfg.Title,
		BaseURL:    cfg.BaseURL,
		Tabs:       cfg.Tabs,
		Navigation: cfg.Navigation,
		Reporter:   progress.Nop{},
	}
}

// Result summarizes a build.
type Result struct {
	Pages  []Page
	Issues []Issue
}

// Generate builds the full static site. Every page is rendered with the
// sidebar as it appears when that page's URL is visited.
func (g *Generator) Generate() (*Result, error) {
	pages, err := CollectPages(g.ContentDir, g.Include, g.Exclude)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", g.ContentDir)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	entries, err := BuildSearchIndex(pages)
	if err != nil {
		return nil, fmt.Errorf("building search index: %w", err)
	}
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return nil, fmt.Errorf("writing search index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), StyleSheet(), 0o644); err != nil {
		return nil, err
	}

	renderer, err := NewRenderer(g.Title, g.BaseURL)
	if err != nil {
		return nil, err
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(len(pages), "Building site")
	defer reporter.Finish()

	ctx := sidebar.NewContext()
	ctx.Mount()
	defer ctx.Unmount()
	presenter := sidebar.NewPresenter(ctx, g.Tabs, g.Navigation)
	for i, page := range pages {
		presenter.Navigate(page.URL)
		if err := g.writePage(renderer, page, presenter.View()); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", page.SourcePath, err)
		}
		reporter.Update(i+1, page.URL)
	}

	return &Result{
		Pages:  pages,
		Issues: Audit(pages, g.Tabs, g.Navigation),
	}, nil
}

func (g *Generator) writePage(r *Renderer, page Page, view sidebar.View) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(OutputPathForURL(page.URL)))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return r.RenderPage(f, page, view)
}
