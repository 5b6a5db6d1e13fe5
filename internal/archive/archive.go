// Package archive builds a downloadable zip holding one game's media in
// the same console/folder/file layout the writer produces on disk. It is
// the output path for sessions that never touch a live media root.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vmunix/gamedia/internal/media"
)

// File is one media file to pack.
type File struct {
	CategoryKey string
	ContentType string // optional; sniffed from Data when empty
	Data        []byte
}

// extByType maps content types to archive file extensions. Upstream
// validation accepts either canonical raster format for image slots, so
// the extension follows the actual content, not the category's nominal
// extension.
var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"video/mp4":  ".mp4",
}

// Ext returns the archive extension for a content type.
func Ext(contentType string) (string, bool) {
	// Strip parameters such as "; charset=...".
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	ext, ok := extByType[strings.TrimSpace(contentType)]
	return ext, ok
}

// Filename returns the suggested download name for a game's archive.
func Filename(console, game string) string {
	return fmt.Sprintf("%s_%s_media.zip", console, game)
}

// Build packs the given files into a zip blob laid out as
// <console>/<folder>/<game><ext>. Files whose content type has no known
// extension are skipped with a warning rather than failing the whole
// archive. Unknown category keys fail the call.
func Build(console, game string, files []File, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !media.KnownConsole(console) {
		return nil, fmt.Errorf("%w: %q", media.ErrUnknownConsole, console)
	}
	game = strings.TrimSpace(game)
	if game == "" {
		return nil, media.ErrEmptyGameName
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files {
		cat, ok := media.CategoryByKey(f.CategoryKey)
		if !ok {
			return nil, fmt.Errorf("%w: %q", media.ErrUnknownCategory, f.CategoryKey)
		}

		contentType := f.ContentType
		if contentType == "" {
			contentType = http.DetectContentType(f.Data)
		}
		ext, ok := Ext(contentType)
		if !ok {
			logger.Warn("omitting file with unsupported content type",
				"category", cat.Key, "content_type", contentType)
			continue
		}

		name := fmt.Sprintf("%s/%s/%s%s", console, cat.Folder, game, ext)
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("create archive entry %s: %w", name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write archive entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
