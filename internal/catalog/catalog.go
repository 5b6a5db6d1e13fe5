// Package catalog holds the in-memory session catalog of games derived
// from a media root. It is rebuilt by a scan and kept in sync with the
// directory by applying the same deltas the writer and deleter apply on
// disk, so the browse view never needs a full re-scan after an edit.
//
// Nothing here is persisted; a new session re-derives everything from the
// live folder.
package catalog

import (
	"fmt"
	"sync"

	"github.com/vmunix/gamedia/internal/media"
	"github.com/vmunix/gamedia/pkg/dirfs"
)

// Catalog is a mutex-guarded map of games keyed by game ID.
type Catalog struct {
	mu    sync.RWMutex
	games map[string]*media.Game
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{games: make(map[string]*media.Game)}
}

// Replace swaps the entire catalog content with the given scan result.
func (c *Catalog) Replace(games []*media.Game) {
	next := make(map[string]*media.Game, len(games))
	for _, g := range games {
		next[g.ID] = g
	}
	c.mu.Lock()
	c.games = next
	c.mu.Unlock()
}

// Get returns the game with the given ID.
func (c *Catalog) Get(id string) (*media.Game, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.games[id]
	return g, ok
}

// Len returns the number of games in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.games)
}

// ApplyWrite records a successful media write: the slot for categoryKey
// is set on the matching game, creating the record if this was the game's
// first file. Returns the updated game.
func (c *Catalog) ApplyWrite(console, game, categoryKey string, ref dirfs.Ref) (*media.Game, error) {
	cat, ok := media.CategoryByKey(categoryKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", media.ErrUnknownCategory, categoryKey)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := media.GameID(console, game)
	g, ok := c.games[id]
	if !ok {
		g = media.NewGame(console, game)
		c.games[id] = g
	}
	g.SetMedia(cat.Folder, ref)
	return g, nil
}

// ApplyDelete records a successful delete of all of a game's media,
// removing the record. Returns false if the game was not in the catalog.
func (c *Catalog) ApplyDelete(console, game string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := media.GameID(console, game)
	if _, ok := c.games[id]; !ok {
		return false
	}
	delete(c.games, id)
	return true
}
