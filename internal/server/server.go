// Package server exposes the compose and narrow cores over a small HTTP
// API, for tooling that wants links and quote bodies without linking Go
// code. The server is a thin shell: all semantics live in pkg/compose
// and pkg/narrow, and the realm data is a read-only snapshot fixed at
// startup.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/veldtchat/veldt/internal/directory"
)

// Server serves the compose API for one realm snapshot.
type Server struct {
	snap      *directory.Snapshot
	logger    *slog.Logger
	metrics   *Metrics
	startedAt time.Time
}

// New creates a server over a loaded snapshot.
func New(snap *directory.Snapshot, logger *slog.Logger) *Server {
	return &Server{
		snap:      snap,
		logger:    logger,
		metrics:   &Metrics{},
		startedAt: time.Now(),
	}
}

// Handler builds the chi mux with all routes wired.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverer)

	r.Get("/health", s.handleHealth())
	r.Get("/status", s.handleStatus())
	r.Route("/api", func(r chi.Router) {
		r.Post("/compose/quote", s.handleQuote())
		r.Post("/narrow/link", s.handleLink())
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return errors.New("server: listen failed: " + err.Error())
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("compose API listening", "addr", addr)
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("compose API shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// recoverer converts contract-violation panics from the core packages
// into 500 responses. Library callers keep fail-fast behavior; an HTTP
// client sending garbage must not kill the process.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.metrics.RecordError()
				s.logger.Error("handler panic", "path", r.URL.Path, "panic", rec)
				httpError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
