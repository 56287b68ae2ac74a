// Package server provides the catalog preview server: a read-only static
// file server over the generated output tree with permissive CORS headers,
// so browser-based STAC viewers can load the catalog from another origin.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/trendsearth/stacgen/internal/config"
	"github.com/trendsearth/stacgen/pkg/constants"
)

// Server serves a generated catalog directory over HTTP.
type Server struct {
	cfg    config.ServerConfig
	dir    string
	logger *zerolog.Logger
	router *mux.Router
}

// New creates a preview server for the given catalog directory.
func New(cfg config.ServerConfig, dir string, logger *zerolog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		dir:    dir,
		logger: logger,
	}

	r := mux.NewRouter()
	r.Use(s.corsMiddleware, s.logMiddleware)
	r.HandleFunc("/healthz", s.healthzHandler).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(dir))).
		Methods(http.MethodGet, http.MethodHead, http.MethodOptions)
	s.router = r

	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  constants.ServerReadTimeout,
		WriteTimeout: constants.ServerWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("addr", addr).
			Str("dir", s.dir).
			Msg("Serving catalog")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down preview server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// corsMiddleware adds the permissive CORS headers every response carries.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logMiddleware logs one line per request.
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Request served")
	})
}

// healthzHandler reports server liveness.
func (s *Server) healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "dir": s.dir})
}
