// Package v1 implements the native REST API.
package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/vmunix/gamedia/internal/catalog"
	"github.com/vmunix/gamedia/internal/fetch"
	"github.com/vmunix/gamedia/internal/media"
	"github.com/vmunix/gamedia/pkg/dirfs"
)

// Fetcher retrieves remote media for the fetch-image proxy.
//
//go:generate mockgen -destination=mocks/fetcher.go -package=mocks . Fetcher
type Fetcher interface {
	Fetch(ctx context.Context, rawURL, nominalType string) (*fetch.Result, error)
}

// Config holds API server configuration.
type Config struct {
	Version string
}

// Server is the v1 API server.
type Server struct {
	root    *dirfs.Root
	catalog *catalog.Catalog
	scanner *media.Scanner
	fetcher Fetcher
	logger  *slog.Logger
	cfg     Config

	// Mutations against the root are serialized; behavior under
	// concurrent writes to the same directory is undefined.
	mu sync.Mutex
}

// New creates a new v1 API server.
func New(root *dirfs.Root, cat *catalog.Catalog, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		root:    root,
		catalog: cat,
		scanner: media.NewScanner(logger.With("component", "scanner")),
		logger:  logger,
		cfg:     cfg,
	}
}

// SetFetcher configures the remote media fetcher. Without one the
// fetch-image proxy answers 503.
func (s *Server) SetFetcher(f Fetcher) {
	s.fetcher = f
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Catalog
	mux.HandleFunc("GET /api/v1/games", s.listGames)
	mux.HandleFunc("GET /api/v1/games/{id}", s.getGame)
	mux.HandleFunc("GET /api/v1/games/{id}/media/{category}", s.serveMedia)
	mux.HandleFunc("POST /api/v1/scan", s.triggerScan)

	// Mutations
	mux.HandleFunc("PUT /api/v1/media/{console}/{game}/{category}", s.putMedia)
	mux.HandleFunc("DELETE /api/v1/games/{console}/{game}", s.deleteGame)

	// Session-local outputs
	mux.HandleFunc("POST /api/v1/archive", s.buildArchive)
	mux.HandleFunc("POST /api/v1/fetch-image", s.fetchImage)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
	mux.HandleFunc("GET /api/v1/consoles", s.listConsoles)
	mux.HandleFunc("GET /api/v1/categories", s.listCategories)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Version:  s.cfg.Version,
		Root:     s.root.Path(),
		Writable: s.root.Mode() == dirfs.ModeReadWrite,
		Games:    s.catalog.Len(),
	})
}

func (s *Server) listConsoles(w http.ResponseWriter, r *http.Request) {
	items := make([]consoleResponse, 0, len(media.Consoles))
	for _, c := range media.Consoles {
		items = append(items, consoleResponse{ID: c.ID, Label: c.Label})
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	items := make([]categoryResponse, 0, len(media.Categories))
	for _, c := range media.Categories {
		items = append(items, categoryResponse{
			Key:         c.Key,
			Folder:      c.Folder,
			Ext:         c.Ext,
			Accept:      c.Accept,
			Label:       c.Label,
			Description: c.Description,
		})
	}
	writeJSON(w, http.StatusOK, items)
}
