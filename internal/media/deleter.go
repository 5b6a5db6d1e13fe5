package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/gamedia/pkg/dirfs"
)

// Delete removes every file across all known media folders whose base
// name equals game exactly (case-sensitive). It returns the number of
// files deleted.
//
// A missing console folder fails the whole call with ErrConsoleNotFound.
// Missing category folders are normal and skipped. A failure deleting one
// matched file does not stop the pass over the remaining folders; if any
// deletion failed the call returns a *DeleteError carrying both the
// success count and the per-file failures. Zero matches is a no-op, not
// an error.
func Delete(ctx context.Context, root *dirfs.Root, console, game string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !KnownConsole(console) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownConsole, console)
	}
	if game == "" {
		return 0, ErrEmptyGameName
	}
	if err := root.RequireWrite(); err != nil {
		return 0, fmt.Errorf("delete %s/%s: %w", console, game, err)
	}

	consoleDir, err := root.Dir(console)
	if err != nil {
		if errors.Is(err, dirfs.ErrNotFound) {
			return 0, fmt.Errorf("%w: %q", ErrConsoleNotFound, console)
		}
		return 0, fmt.Errorf("open console folder %s: %w", console, err)
	}

	deleted := 0
	var failed []FileError

	for _, cat := range Categories {
		if err := ctx.Err(); err != nil {
			return deleted, err
		}
		mediaDir, err := consoleDir.Dir(cat.Folder)
		if err != nil {
			if errors.Is(err, dirfs.ErrNotFound) {
				continue
			}
			logger.Warn("skipping media folder",
				"console", console, "folder", cat.Folder, "error", err)
			continue
		}

		entries, err := mediaDir.List(ctx)
		if err != nil {
			logger.Warn("listing media folder failed",
				"console", console, "folder", cat.Folder, "error", err)
			continue
		}

		for _, e := range entries {
			if e.Kind != dirfs.KindFile || BaseName(e.Name) != game {
				continue
			}
			if err := mediaDir.Remove(e.Name); err != nil {
				failed = append(failed, FileError{Folder: cat.Folder, Name: e.Name, Err: err})
				continue
			}
			logger.Debug("deleted media file",
				"console", console, "folder", cat.Folder, "file", e.Name)
			deleted++
		}
	}

	if len(failed) > 0 {
		return deleted, &DeleteError{Console: console, Game: game, Deleted: deleted, Failed: failed}
	}
	return deleted, nil
}
