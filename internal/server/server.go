// Package server wires the HTTP surface over the GeoJSON model: validation,
// echo, and document CRUD.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mohammed-shakir/geojson-validator/internal/config"
	"github.com/mohammed-shakir/geojson-validator/internal/health"
	"github.com/mohammed-shakir/geojson-validator/internal/middleware"
)

// Router assembles the chi router with all routes and middleware.
func Router(logger *slog.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recover())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	r.Get("/healthz", health.Liveness())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Post("/validate", h.Validate)
	r.Post("/echo", h.Echo)

	r.Route("/geojson", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

// Run starts serving and blocks until ctx is canceled or the listener
// fails.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, h *Handlers) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           Router(logger, h),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listen", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
