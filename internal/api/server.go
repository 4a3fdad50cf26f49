package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/newthinker/hypergluex/internal/api/handler/web"
	"github.com/newthinker/hypergluex/internal/api/response"
	"github.com/newthinker/hypergluex/internal/core"
	"github.com/newthinker/hypergluex/internal/layout"
	"github.com/newthinker/hypergluex/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server for the dashboard
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	router     chi.Router
	web        *web.Handler
	metrics    *metrics.Registry
	watch      bool
}

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	TemplatesDir string
	Watch        bool

	MetricsEnabled bool
	MetricsPath    string

	Site       web.Site
	Breakpoint layout.Breakpoint
}

// NewServer creates a new HTTP server
func NewServer(cfg Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Watch && cfg.TemplatesDir == "" {
		return nil, core.Wrapf(core.ErrConfigMissing, "watch requires a templates directory")
	}

	reg := metrics.NewRegistry()
	webHandler, err := web.NewHandler(web.Options{
		TemplatesDir: cfg.TemplatesDir,
		Site:         cfg.Site,
		Breakpoint:   cfg.Breakpoint,
		Recorder:     reg,
		Logger:       logger.Named("web"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating web handler: %w", err)
	}

	s := &Server{
		logger:  logger,
		router:  chi.NewRouter(),
		web:     webHandler,
		metrics: reg,
		watch:   cfg.Watch,
	}
	s.setupRoutes(cfg)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(cfg Config) {
	r := s.router

	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
	r.Use(metrics.LoggingMiddleware(s.logger))
	r.Use(metrics.HTTPMiddleware(s.metrics))
	r.Use(middleware.Compress(5, "text/html", "application/json"))

	// Web UI routes
	r.Get("/", s.web.Home)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
	})

	if cfg.MetricsEnabled {
		r.Method(http.MethodGet, cfg.MetricsPath,
			promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{Registry: s.metrics}))
	}

	r.NotFound(s.handleNotFound)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Serve runs the server, and the template watcher when enabled, until ctx is
// cancelled or one of them fails. It then shuts the server down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(s.Start)

	if s.watch {
		g.Go(func() error {
			return s.web.Watch(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

type health struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, health{Status: "ok"})
}

// handleNotFound answers JSON under /api and plain text elsewhere.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		err := core.Wrapf(core.ErrNotFound, "%s", r.URL.Path)
		response.Error(w, core.StatusCode(err), err)
		return
	}
	http.NotFound(w, r)
}
