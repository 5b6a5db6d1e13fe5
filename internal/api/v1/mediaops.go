package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/vmunix/gamedia/internal/media"
	"github.com/vmunix/gamedia/pkg/dirfs"
)

// maxUploadSize caps a media upload at 256 MiB.
const maxUploadSize = 256 << 20

// putMedia writes one media slot and applies the same delta to the
// catalog, keeping UI and disk in sync without a re-scan.
func (s *Server) putMedia(w http.ResponseWriter, r *http.Request) {
	console := r.PathValue("console")
	game := r.PathValue("game")
	key := r.PathValue("category")

	content, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_body", "failed to read request body: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ref, err := media.WriteFile(r.Context(), s.root, console, game, key, content)
	if err != nil {
		s.writeMediaError(w, err)
		return
	}

	g, err := s.catalog.ApplyWrite(console, game, key, ref)
	if err != nil {
		// Category was validated by WriteFile already.
		writeError(w, http.StatusInternalServerError, "catalog_failed", err.Error())
		return
	}

	s.logger.Info("media written", "console", console, "game", game, "category", key, "bytes", len(content))
	writeJSON(w, http.StatusOK, toGameResponse(g))
}

// deleteGame removes every media file for a game and drops it from the
// catalog.
func (s *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	console := r.PathValue("console")
	game := r.PathValue("game")

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := media.Delete(r.Context(), s.root, console, game, s.logger.With("component", "deleter"))
	if err != nil {
		var delErr *media.DeleteError
		if errors.As(err, &delErr) {
			// Partial failure: the files that went are gone, report the
			// rest.
			writeError(w, http.StatusInternalServerError, "partial_delete", delErr.Error())
			return
		}
		s.writeMediaError(w, err)
		return
	}

	s.catalog.ApplyDelete(console, game)
	s.logger.Info("game media deleted", "console", console, "game", game, "files", deleted)
	writeJSON(w, http.StatusOK, deleteResponse{Deleted: deleted})
}

// writeMediaError maps media/dirfs errors onto HTTP status codes.
func (s *Server) writeMediaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, media.ErrUnknownConsole),
		errors.Is(err, media.ErrUnknownCategory),
		errors.Is(err, media.ErrEmptyGameName),
		errors.Is(err, dirfs.ErrInvalidName):
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, media.ErrConsoleNotFound):
		writeError(w, http.StatusNotFound, "console_not_found", err.Error())
	case errors.Is(err, dirfs.ErrPermission):
		writeError(w, http.StatusForbidden, "permission_denied", err.Error())
	default:
		s.logger.Error("media operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
	}
}
