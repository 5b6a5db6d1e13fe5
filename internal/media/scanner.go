package media

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmunix/gamedia/pkg/dirfs"
)

// Scanner walks a media root and derives Game records from it.
type Scanner struct {
	logger *slog.Logger
}

// NewScanner creates a Scanner. A nil logger falls back to slog.Default.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger}
}

// Scan walks root and returns one Game per (console, base name) pair,
// sorted by name with a case-insensitive locale-aware compare.
//
// Only directories whose name is a recognized console ID are entered;
// everything else at the top level is skipped. Within a console every
// directory is treated as a media folder, known or not. Files collide on
// base name with the last listed entry winning; since directory listings
// are sorted, the lexicographically last file takes the slot.
//
// A failure listing the root aborts the scan. Failures deeper in the walk
// drop the affected directory's contribution and are logged, never
// silently swallowed.
func (s *Scanner) Scan(ctx context.Context, root *dirfs.Root) ([]*Game, error) {
	entries, err := root.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list media root: %w", err)
	}

	var games []*Game
	for _, e := range entries {
		if e.Kind != dirfs.KindDir || !KnownConsole(e.Name) {
			continue
		}
		consoleDir, err := root.Dir(e.Name)
		if err != nil {
			s.logger.Warn("skipping console folder", "console", e.Name, "error", err)
			continue
		}
		byName, err := s.scanConsole(ctx, consoleDir, e.Name)
		if err != nil {
			return nil, err
		}
		games = append(games, byName...)
	}

	SortGames(games)
	return games, nil
}

// scanConsole walks one console folder and returns its games.
func (s *Scanner) scanConsole(ctx context.Context, dir dirfs.Dir, console string) ([]*Game, error) {
	entries, err := dir.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list console %s: %w", console, err)
	}

	byName := make(map[string]*Game)
	var order []string

	for _, e := range entries {
		if e.Kind != dirfs.KindDir {
			continue
		}
		mediaDir, err := dir.Dir(e.Name)
		if err != nil {
			s.logger.Warn("skipping media folder", "console", console, "folder", e.Name, "error", err)
			continue
		}
		if err := s.scanMediaFolder(ctx, mediaDir, console, e.Name, byName, &order); err != nil {
			return nil, err
		}
	}

	games := make([]*Game, 0, len(order))
	for _, name := range order {
		games = append(games, byName[name])
	}
	return games, nil
}

// scanMediaFolder records every file in one media folder against the
// per-console game map, creating records lazily on first sight.
func (s *Scanner) scanMediaFolder(ctx context.Context, dir dirfs.Dir, console, folder string, byName map[string]*Game, order *[]string) error {
	entries, err := dir.List(ctx)
	if err != nil {
		return fmt.Errorf("list %s/%s: %w", console, folder, err)
	}

	for _, e := range entries {
		if e.Kind != dirfs.KindFile {
			continue
		}
		name := BaseName(e.Name)
		if name == "" {
			// Extension-only names (dotfiles) carry no game.
			continue
		}

		ref, err := dir.Open(e.Name)
		if err != nil {
			s.logger.Warn("skipping unreadable file",
				"console", console, "folder", folder, "file", e.Name, "error", err)
			continue
		}

		game, ok := byName[name]
		if !ok {
			game = NewGame(console, name)
			byName[name] = game
			*order = append(*order, name)
		}
		game.SetMedia(folder, ref)
	}
	return nil
}
