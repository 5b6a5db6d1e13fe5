package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vmunix/gamedia/internal/archive"
	"github.com/vmunix/gamedia/internal/media"
)

// buildArchive packs the supplied media files into a zip with the
// standard console/folder layout and streams it back as a download. The
// live media root is never touched.
func (s *Server) buildArchive(w http.ResponseWriter, r *http.Request) {
	var req archiveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUploadSize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_body", "invalid JSON body: "+err.Error())
		return
	}
	if len(req.Files) == 0 {
		writeError(w, http.StatusBadRequest, "no_files", "at least one file is required")
		return
	}

	files := make([]archive.File, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, archive.File{
			CategoryKey: f.Category,
			ContentType: f.ContentType,
			Data:        f.Data,
		})
	}

	blob, err := archive.Build(req.Console, req.Game, files, s.logger.With("component", "archive"))
	if err != nil {
		switch {
		case errors.Is(err, media.ErrUnknownConsole),
			errors.Is(err, media.ErrUnknownCategory),
			errors.Is(err, media.ErrEmptyGameName):
			writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		default:
			s.logger.Error("archive build failed", "error", err)
			writeError(w, http.StatusInternalServerError, "archive_failed", err.Error())
		}
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", archive.Filename(req.Console, req.Game)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}
