package media

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator builds the name collator: locale-aware, case-insensitive.
// Collators are not safe for concurrent use, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// SortGames orders games by name ascending using a case-insensitive
// locale-aware compare, with console ID breaking ties between identically
// named games on different systems.
func SortGames(games []*Game) {
	c := newCollator()
	sort.SliceStable(games, func(i, j int) bool {
		if cmp := c.CompareString(games[i].Name, games[j].Name); cmp != 0 {
			return cmp < 0
		}
		return games[i].Console < games[j].Console
	})
}
