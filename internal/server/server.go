// Package server implements the drawnet preview server.
//
// The server exposes the built-in scene gallery over HTTP: a JSON index
// of scenes and their rendered artifacts in every supported output
// format. Rendered artifacts are cached through a [cache.Cache] so
// repeated requests do not re-draw the scene.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/drawnet/drawnet/pkg/cache"
)

const shutdownTimeout = 5 * time.Second

// Config holds the server dependencies. Zero-value fields fall back to
// documented defaults.
type Config struct {
	// Addr is the listen address. Defaults to ":8080".
	Addr string

	// Cache stores rendered artifacts. Defaults to a null cache.
	Cache cache.Cache

	// Keyer derives cache keys. Defaults to the standard scheme.
	Keyer cache.Keyer

	// TTL is the artifact lifetime in the cache. Defaults to one hour.
	TTL time.Duration

	// Log receives request and render logs. Defaults to log.Default().
	Log *log.Logger
}

// Server serves the scene gallery.
type Server struct {
	addr  string
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
	log   *log.Logger
}

// New creates a server from cfg, applying defaults for unset fields.
func New(cfg Config) *Server {
	s := &Server{
		addr:  cfg.Addr,
		cache: cfg.Cache,
		keyer: cfg.Keyer,
		ttl:   cfg.TTL,
		log:   cfg.Log,
	}
	if s.addr == "" {
		s.addr = ":8080"
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.keyer == nil {
		s.keyer = cache.NewDefaultKeyer()
	}
	if s.ttl == 0 {
		s.ttl = time.Hour
	}
	if s.log == nil {
		s.log = log.Default()
	}
	return s
}

// Handler returns the server's route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/gallery", func(r chi.Router) {
		r.Get("/", s.handleIndex)
		r.Get("/{name}.{format}", s.handleArtifact)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled or the listener
// fails. On cancellation in-flight requests get a grace period before
// the listener is closed.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	errs := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("graceful shutdown incomplete", "error", err)
			return srv.Close()
		}
		return nil
	}
}
