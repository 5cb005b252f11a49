// Package ui serves the extraction and validation pipeline over HTTP for
// integrations that do not go through the CLI.
package ui

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"goreview/adapters/postgres"
	"goreview/internal"
	"goreview/internal/config"
)

// Server exposes parsing, prompt composition, validation, and the report
// archive over HTTP.
type Server struct {
	router   *chi.Mux
	cfg      *config.Config
	archive  *postgres.ReviewArchive
	parseSem *semaphore.Weighted
	logger   *internal.Logger
}

// NewServer wires routes and middleware. The archive may be nil when no
// database is configured; archive routes then answer 503.
func NewServer(cfg *config.Config, archive *postgres.ReviewArchive) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		cfg:     cfg,
		archive: archive,
		// Workbook parsing buffers whole sheets in memory; cap how many
		// uploads parse at once.
		parseSem: semaphore.NewWeighted(4),
		logger:   internal.NewDefaultLogger(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Get("/api/sections", s.handleSections)
	s.router.Post("/api/datasets/parse", s.handleParse)
	s.router.Post("/api/prompts/document", s.handlePromptDocument)
	s.router.Post("/api/prompts/{number}", s.handlePrompt)
	s.router.Post("/api/reviews/validate", s.handleValidate)
	s.router.Get("/api/reports", s.handleListReports)
	s.router.Get("/api/reports/{id}", s.handleGetReport)
}

// Handler exposes the route tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.cfg.Server.Port,
		Handler: s.router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("[Server] Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
