package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ternsecure/docsite/internal/config"
	"github.com/ternsecure/docsite/internal/db"
	"github.com/ternsecure/docsite/internal/sidebar"
	"github.com/ternsecure/docsite/internal/site"
)

func registerRoutes(r chi.Router, s *Server) {
	r.Get("/api/sidebar", sidebarHandler(s))
	r.Get("/api/tabs", tabsHandler(s))
	r.Get("/api/search", searchHandler(s))
	r.Get("/search-index.json", searchIndexHandler(s))
	r.Get("/style.css", styleHandler())
	r.Get("/*", pageHandler(s))
}

// presenterFor builds a presenter for one request. The sidebar context is
// scoped to the request and unmounted when the handler returns.
func presenterFor(cfg *config.Config, pathname string) *sidebar.Presenter {
	ctx := sidebar.NewContext()
	ctx.Mount()
	p := sidebar.NewPresenter(ctx, cfg.Tabs, cfg.Navigation)
	p.Navigate(pathname)
	return p
}

// sidebarHandler returns the sidebar view for ?path=. Optional parameters
// replay user actions in order: pin=<section>, click=<section> and any
// number of toggle=<folder key>.
func sidebarHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		pathname := q.Get("path")
		if pathname == "" {
			http.Error(w, "path query parameter is required", http.StatusBadRequest)
			return
		}

		cfg, _ := s.snapshot()
		p := presenterFor(cfg, pathname)
		defer p.Context().Unmount()

		if v := q.Get("pin"); v != "" {
			idx, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "pin must be a section index", http.StatusBadRequest)
				return
			}
			p.Pin(idx)
		}
		if v := q.Get("click"); v != "" {
			idx, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "click must be a section index", http.StatusBadRequest)
				return
			}
			p.ClickSection(idx)
		}
		for _, key := range q["toggle"] {
			p.ToggleFolder(key)
		}
		if q.Get("collapsed") == "true" {
			p.Context().SetCollapsed(true)
		}

		writeJSON(w, http.StatusOK, p.View())
	}
}

func tabsHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pathname := r.URL.Query().Get("path")
		if pathname == "" {
			pathname = "/"
		}
		cfg, _ := s.snapshot()
		p := presenterFor(cfg, pathname)
		defer p.Context().Unmount()

		tabs := p.View().Tabs
		if tabs == nil {
			tabs = []sidebar.TabView{}
		}
		writeJSON(w, http.StatusOK, tabs)
	}
}

// searchHandler queries the full-text index: ?q=<words>&limit=<n>.
func searchHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit := 10
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}
		hits, err := s.index.Search(r.Context(), q.Get("q"), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if hits == nil {
			hits = []db.Hit{}
		}
		writeJSON(w, http.StatusOK, hits)
	}
}

func searchIndexHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, _ := s.snapshot()
		pages, err := site.CollectPages(cfg.ContentDir, cfg.Include, cfg.Exclude)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		entries, err := site.BuildSearchIndex(pages)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data, err := site.MarshalSearchIndex(entries)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}

func styleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write(site.StyleSheet())
	}
}

// pageHandler renders the markdown page behind the request path with the
// sidebar for that path.
func pageHandler(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, renderer := s.snapshot()

		page, err := site.LoadPage(cfg.ContentDir, r.URL.Path)
		if errors.Is(err, os.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !site.MatchesInclude(page.SourcePath, cfg.Include) || site.MatchesExclude(page.SourcePath, cfg.Exclude) {
			http.NotFound(w, r)
			return
		}

		p := presenterFor(cfg, page.URL)
		defer p.Context().Unmount()

		var buf bytes.Buffer
		if err := renderer.RenderPage(&buf, page, p.View()); err != nil {
			s.logger.Error("rendering page", "path", r.URL.Path, "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
