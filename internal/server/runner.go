// Package server manages the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config for the server runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Runner serves HTTP until its context is canceled, then shuts the
// listener down gracefully.
type Runner struct {
	handler http.Handler
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(handler http.Handler, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	return &Runner{
		handler: handler,
		config:  cfg,
		logger:  logger,
	}
}

// Run starts the HTTP server and blocks until the context is canceled
// or the listener fails.
func (r *Runner) Run(ctx context.Context) error {
	srv := &http.Server{Addr: r.config.Addr, Handler: r.handler}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("server listening", "addr", r.config.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		r.logger.Info("server stopped")
		return ctx.Err()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
