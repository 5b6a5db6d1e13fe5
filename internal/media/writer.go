package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/vmunix/gamedia/pkg/dirfs"
)

// WriteFile writes content into the canonical slot for (console, game,
// category) under root, creating the console and category folders as
// needed. The filename is the game name plus the category's canonical
// extension; an existing file of that name is overwritten, which makes
// the operation idempotent.
//
// Write access is re-validated on every call, since a grant can go away
// between operations. The in-memory catalog is not touched; the caller
// applies the matching delta after a successful write.
func WriteFile(ctx context.Context, root *dirfs.Root, console, game, categoryKey string, content []byte) (dirfs.Ref, error) {
	cat, ok := CategoryByKey(categoryKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryKey)
	}
	if !KnownConsole(console) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConsole, console)
	}
	game = strings.TrimSpace(game)
	if game == "" {
		return nil, ErrEmptyGameName
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := root.RequireWrite(); err != nil {
		return nil, fmt.Errorf("write %s/%s: %w", console, cat.Folder, err)
	}

	consoleDir, err := root.EnsureDir(console)
	if err != nil {
		return nil, fmt.Errorf("create console folder %s: %w", console, err)
	}
	mediaDir, err := consoleDir.EnsureDir(cat.Folder)
	if err != nil {
		return nil, fmt.Errorf("create media folder %s/%s: %w", console, cat.Folder, err)
	}

	filename := game + cat.Ext
	if err := mediaDir.WriteFile(filename, content); err != nil {
		return nil, fmt.Errorf("write %s/%s/%s: %w", console, cat.Folder, filename, err)
	}
	return mediaDir.Open(filename)
}
