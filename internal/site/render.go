package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ternsecure/docsite/internal/sidebar"
)

// Renderer turns markdown pages into complete HTML documents wrapped by a
// sidebar view.
type Renderer struct {
	SiteTitle string
	BaseURL   string
	// LiveReload adds a script that reloads the page when the dev server
	// announces a change.
	LiveReload bool

	md   goldmark.Markdown
	tmpl *template.Template
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title       string
	SiteTitle   string
	BaseURL     string
	SDK         string
	Content     template.HTML
	SidebarHTML template.HTML
	Sidebar     sidebar.State
	LiveReload  bool
}

// NewRenderer creates a Renderer. baseURL is the path prefix the site is
// served under and may be empty.
func NewRenderer(siteTitle, baseURL string) (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{
		SiteTitle: siteTitle,
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
		tmpl: tmpl,
	}, nil
}

// Markdown converts the page body to HTML and rewrites links to other
// markdown files into site URLs.
func (r *Renderer) Markdown(page Page) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(page.Content, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return rewriteMDLinks(buf.String(), page.SourcePath), nil
}

// RenderPage writes the full HTML document for page to w.
func (r *Renderer) RenderPage(w io.Writer, page Page, view sidebar.View) error {
	body, err := r.Markdown(page)
	if err != nil {
		return err
	}
	return r.tmpl.Execute(w, pageData{
		Title:       page.Title,
		SiteTitle:   r.SiteTitle,
		BaseURL:     r.BaseURL,
		SDK:         view.SDK,
		Content:     template.HTML(body),
		SidebarHTML: template.HTML(view.ToHTML()),
		Sidebar:     view.Sidebar,
		LiveReload:  r.LiveReload,
	})
}

// StyleSheet returns the site stylesheet.
func StyleSheet() []byte { return []byte(cssContent) }

var mdLinkRe = regexp.MustCompile(`href="([^":?#]+)\.md(#[^"]*)?"`)

// rewriteMDLinks changes href="x.md" links into the clean URL of the page
// they point at. Relative links resolve against the linking page's source
// path; links with a scheme are left alone.
func rewriteMDLinks(content, sourcePath string) string {
	dir := path.Dir(sourcePath)
	return mdLinkRe.ReplaceAllStringFunc(content, func(m string) string {
		sub := mdLinkRe.FindStringSubmatch(m)
		target := sub[1] + ".md"
		if !strings.HasPrefix(target, "/") {
			target = path.Join("/", dir, target)
		}
		target = strings.TrimPrefix(path.Clean(target), "/")
		return `href="` + URLForPath(target) + sub[2] + `"`
	})
}
