// Package server exposes the rendering pipeline over HTTP.
//
// Routes:
//
//	POST /v1/render   render one record, respond with the artifact
//	GET  /v1/themes   list theme presets
//	GET  /healthz     liveness probe
//
// Every response carries an X-Render-ID header. Pipeline errors are
// returned as JSON with a status derived from their code.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/rnaviz/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = "127.0.0.1:8080"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Config configures a Server.
type Config struct {
	// Runner renders requests. A runner without cache is used when nil.
	Runner *pipeline.Runner
	// Defaults fill request fields the client leaves out.
	Defaults pipeline.Options
	Timeout  time.Duration
	Logger   *log.Logger
}

// Server is an http.Handler serving the rendering API.
type Server struct {
	runner   *pipeline.Runner
	defaults pipeline.Options
	logger   *log.Logger
	router   chi.Router
}

// New builds a server and its routes.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	s := &Server{
		runner:   cfg.Runner,
		defaults: cfg.Defaults,
		logger:   cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.renderID)
	r.Use(s.observe)
	r.Use(middleware.Timeout(cfg.Timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/themes", s.handleThemes)
	})
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
