// Package server exposes the planner over HTTP: layouts as JSON, assembly
// drawings as SVG, and share links with their QR codes.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/piwi3910/PlanterCut/internal/config"
	"github.com/piwi3910/PlanterCut/internal/model"
)

type Server struct {
	cfg      *config.Config
	defaults model.PlanterConfig
	router   *mux.Router
}

// New builds a server whose share links point at cfg.ShareBaseURL and
// whose QR decoding fills missing fields from defaults.
func New(cfg *config.Config, defaults model.PlanterConfig) *Server {
	s := &Server{
		cfg:      cfg,
		defaults: defaults.Clone(),
		router:   mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(Recovery)
	r.Use(Logger)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/defaults", s.Defaults).Methods("GET")
	api.HandleFunc("/layout", s.Layout).Methods("POST")
	api.HandleFunc("/diagram.svg", s.Diagram).Methods("POST")
	api.HandleFunc("/share", s.Share).Methods("POST")
	api.HandleFunc("/share/qr", s.ShareQR).Methods("GET")
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down within
// cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
