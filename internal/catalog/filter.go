package catalog

import (
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/gamedia/internal/media"
)

// queryThreshold is the minimum Jaro-Winkler similarity for a fuzzy
// query match when the query is not a substring of the name.
const queryThreshold = 0.82

// Filter selects games from the catalog. Zero values match everything.
type Filter struct {
	// Console restricts results to one console ID.
	Console string

	// HasFolder keeps only games with a file in the named media folder.
	HasFolder string

	// MissingFolder keeps only games without a file in the named folder.
	MissingFolder string

	// Query matches against game names: case-insensitive substring
	// first, Jaro-Winkler similarity as a fallback for near-misses.
	Query string
}

// List returns the games matching f, sorted by name.
func (c *Catalog) List(f Filter) []*media.Game {
	c.mu.RLock()
	result := make([]*media.Game, 0, len(c.games))
	for _, g := range c.games {
		if f.matches(g) {
			result = append(result, g)
		}
	}
	c.mu.RUnlock()

	media.SortGames(result)
	return result
}

func (f Filter) matches(g *media.Game) bool {
	if f.Console != "" && g.Console != f.Console {
		return false
	}
	if f.HasFolder != "" && !hasFolder(g, f.HasFolder) {
		return false
	}
	if f.MissingFolder != "" && hasFolder(g, f.MissingFolder) {
		return false
	}
	if f.Query != "" && !matchesQuery(g.Name, f.Query) {
		return false
	}
	return true
}

func hasFolder(g *media.Game, folder string) bool {
	for _, f := range g.MediaFolders {
		if f == folder {
			return true
		}
	}
	return false
}

func matchesQuery(name, query string) bool {
	n := strings.ToLower(name)
	q := strings.ToLower(query)
	if strings.Contains(n, q) {
		return true
	}
	return edlib.JaroWinklerSimilarity(n, q) >= queryThreshold
}
