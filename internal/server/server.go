package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ternsecure/docsite/internal/config"
	"github.com/ternsecure/docsite/internal/db"
	"github.com/ternsecure/docsite/internal/site"
)

// Server is the docsite development server. It renders pages on demand
// from the content directory, exposes the sidebar state as JSON, and keeps
// a full-text index of the content for /api/search.
type Server struct {
	logger *log.Logger
	router chi.Router
	index  *db.DB
	hub    *reloadHub

	// reloadMu serializes SetConfig so the snapshot and the index always
	// come from the same configuration.
	reloadMu sync.Mutex

	mu       sync.RWMutex
	cfg      *config.Config
	renderer *site.Renderer

	httpServer *http.Server
}

// New creates a server for cfg. A nil logger uses log.Default().
func New(cfg *config.Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	index, err := db.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("opening search index: %w", err)
	}
	s := &Server{
		logger: logger,
		index:  index,
		hub:    newReloadHub(logger),
	}
	if err := s.SetConfig(cfg); err != nil {
		index.Close()
		return nil, err
	}
	s.router = s.buildRouter(cfg.Server.AllowAllOrigins)
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s, nil
}

// SetConfig swaps the configuration used by subsequent requests, reindexes
// the content and asks open pages to reload. Requests already in flight keep
// the snapshot they started with. CORS settings are fixed when the server is
// created. On error the previous configuration stays in place.
func (s *Server) SetConfig(cfg *config.Config) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	renderer, err := site.NewRenderer(cfg.Title, cfg.BaseURL)
	if err != nil {
		return err
	}
	renderer.LiveReload = true

	if err := s.reindex(cfg); err != nil {
		return err
	}

	s.mu.Lock()
	s.cfg = cfg
	s.renderer = renderer
	s.mu.Unlock()

	s.hub.broadcast()
	return nil
}

// Reindex rebuilds the search index from cfg's content directory.
func (s *Server) Reindex(cfg *config.Config) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	return s.reindex(cfg)
}

func (s *Server) reindex(cfg *config.Config) error {
	pages, err := site.CollectPages(cfg.ContentDir, cfg.Include, cfg.Exclude)
	if err != nil {
		return err
	}
	entries, err := site.BuildSearchIndex(pages)
	if err != nil {
		return fmt.Errorf("building search index: %w", err)
	}
	if err := s.index.ReplacePages(context.Background(), entries); err != nil {
		return fmt.Errorf("indexing pages: %w", err)
	}
	s.logger.Debug("content indexed", "pages", len(entries))
	return nil
}

// snapshot returns the configuration and renderer for one request.
func (s *Server) snapshot() (*config.Config, *site.Renderer) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.renderer
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter(allowAll bool) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if allowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Long-lived, so outside the request timeout.
	r.Get("/ws/reload", s.hub.handle)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Health check
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		registerRoutes(r, s)
	})
	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the port the server was created with and blocks
// until the server stops. It returns nil after Shutdown, including when
// Shutdown ran first.
func (s *Server) Start() error {
	cfg, _ := s.snapshot()
	s.logger.Info("docsite server listening", "addr", s.httpServer.Addr, "content", cfg.ContentDir)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server and releases the search index.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.close()
	err := s.httpServer.Shutdown(ctx)
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	if cerr := s.index.Close(); err == nil {
		err = cerr
	}
	return err
}
