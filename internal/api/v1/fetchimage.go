package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vmunix/gamedia/internal/fetch"
)

// fetchImage retrieves a remote image server-side and passes the bytes
// through with their content type, working around cross-origin
// restrictions in the browser client. Pure pass-through, no state.
func (s *Server) fetchImage(w http.ResponseWriter, r *http.Request) {
	if s.fetcher == nil {
		writeError(w, http.StatusServiceUnavailable, "fetch_disabled", "remote fetch is not configured")
		return
	}

	var req fetchImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_body", "invalid JSON body: "+err.Error())
		return
	}
	nominal := req.Accept
	if nominal == "" {
		nominal = "image/jpeg"
	}

	res, err := s.fetcher.Fetch(r.Context(), req.ImageURL, nominal)
	if err != nil {
		s.writeFetchError(w, err)
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

func (s *Server) writeFetchError(w http.ResponseWriter, err error) {
	var statusErr *fetch.StatusError
	var mismatch *fetch.TypeMismatchError

	switch {
	case errors.Is(err, fetch.ErrInvalidURL):
		writeError(w, http.StatusBadRequest, "invalid_url", err.Error())
	case errors.As(err, &mismatch), errors.Is(err, fetch.ErrUnsupportedType):
		writeError(w, http.StatusBadRequest, "type_mismatch", err.Error())
	case errors.As(err, &statusErr):
		// Propagate the upstream status.
		writeError(w, statusErr.Code, "upstream_failed", err.Error())
	default:
		s.logger.Error("remote fetch failed", "error", err)
		writeError(w, http.StatusBadGateway, "fetch_failed", err.Error())
	}
}
