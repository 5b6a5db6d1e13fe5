package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	v1 "github.com/vmunix/gamedia/internal/api/v1"
	"github.com/vmunix/gamedia/internal/catalog"
	"github.com/vmunix/gamedia/internal/config"
	"github.com/vmunix/gamedia/internal/fetch"
	"github.com/vmunix/gamedia/internal/media"
	"github.com/vmunix/gamedia/internal/server"
	"github.com/vmunix/gamedia/pkg/dirfs"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func runServer(configPath string) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return &config.ConfigError{Path: configPath, Errors: errs}
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// Open the media root
	mode := dirfs.ModeReadWrite
	if cfg.Library.ReadOnly {
		mode = dirfs.ModeRead
	}
	root, err := dirfs.OpenRoot(cfg.Library.Root, mode)
	if err != nil {
		return fmt.Errorf("open media root: %w", err)
	}

	// Initial scan so the catalog is live before the first request
	cat := catalog.New()
	scanner := media.NewScanner(logger.With("component", "scanner"))
	games, err := scanner.Scan(context.Background(), root)
	if err != nil {
		return fmt.Errorf("initial scan: %w", err)
	}
	cat.Replace(games)

	// === HTTP Setup ===
	mux := http.NewServeMux()

	apiV1 := v1.New(root, cat, v1.Config{Version: version}, logger.With("component", "api"))
	apiV1.SetFetcher(fetch.NewClient(
		fetch.WithTimeout(cfg.Fetch.Timeout),
		fetch.WithUserAgent(cfg.Fetch.UserAgent),
	))
	apiV1.RegisterRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"root", root.Path(),
		"mode", root.Mode().String(),
		"games", cat.Len(),
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(logRequests(mux, logger), server.Config{Addr: addr}, logger.With("component", "server"))
	return runner.Run(ctx)
}
