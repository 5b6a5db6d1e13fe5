package v1

import (
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/vmunix/gamedia/internal/catalog"
	"github.com/vmunix/gamedia/internal/media"
)

func toGameResponse(g *media.Game) gameResponse {
	folders := g.MediaFolders
	if folders == nil {
		folders = []string{}
	}
	return gameResponse{
		ID:           g.ID,
		Name:         g.Name,
		Console:      g.Console,
		HasCover:     g.HasCover,
		HasLogo:      g.HasLogo,
		HasVideo:     g.HasVideo,
		MediaFolders: folders,
		MediaCount:   g.MediaCount(),
	}
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func (s *Server) listGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.Filter{
		Console:       q.Get("console"),
		HasFolder:     q.Get("has"),
		MissingFolder: q.Get("missing"),
		Query:         q.Get("q"),
	}
	if filter.Console != "" && !media.KnownConsole(filter.Console) {
		writeError(w, http.StatusBadRequest, "unknown_console", "unknown console: "+filter.Console)
		return
	}

	games := s.catalog.List(filter)
	total := len(games)

	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(games) {
		offset = len(games)
	}
	games = games[offset:]
	if limit > 0 && limit < len(games) {
		games = games[:limit]
	}

	items := make([]gameResponse, 0, len(games))
	for _, g := range games {
		items = append(items, toGameResponse(g))
	}
	writeJSON(w, http.StatusOK, listGamesResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (s *Server) getGame(w http.ResponseWriter, r *http.Request) {
	g, ok := s.catalog.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "game not found")
		return
	}
	writeJSON(w, http.StatusOK, toGameResponse(g))
}

// serveMedia streams a game's media file for preview. Video slots keep
// no handle and cannot be previewed through this endpoint.
func (s *Server) serveMedia(w http.ResponseWriter, r *http.Request) {
	g, ok := s.catalog.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "game not found")
		return
	}

	key := r.PathValue("category")
	ref, ok := g.Media[key]
	if !ok || ref == nil {
		writeError(w, http.StatusNotFound, "no_media", "no media for category "+key)
		return
	}

	data, err := ref.Read()
	if err != nil {
		s.logger.Error("reading media file", "game", g.ID, "category", key, "error", err)
		writeError(w, http.StatusInternalServerError, "read_failed", "failed to read media file")
		return
	}

	contentType := mime.TypeByExtension(path.Ext(ref.Name()))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// triggerScan re-derives the catalog from the live folder.
func (s *Server) triggerScan(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	games, err := s.scanner.Scan(r.Context(), s.root)
	if err != nil {
		s.logger.Error("scan failed", "error", err)
		writeError(w, http.StatusInternalServerError, "scan_failed", "failed to scan media folder: "+err.Error())
		return
	}

	s.catalog.Replace(games)
	writeJSON(w, http.StatusOK, scanResponse{Games: len(games)})
}
