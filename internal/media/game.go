package media

import (
	"path"
	"slices"
	"strings"

	"github.com/vmunix/gamedia/pkg/dirfs"
)

// GameID builds the stable catalog key for a game: console and base name
// joined with an underscore. It survives re-scans as long as neither part
// changes.
func GameID(console, name string) string {
	return console + "_" + name
}

// Game is one game's media presence under a single console, derived from
// the folder tree. The Media map is the source of truth for which slots
// are filled; HasCover, HasLogo, and HasVideo are denormalized from it and
// updated in the same call that mutates the map.
type Game struct {
	ID      string
	Name    string
	Console string

	HasCover bool
	HasLogo  bool
	HasVideo bool

	// Media maps category key to the matched file. Video categories are
	// presence-only and never appear here; see MediaFolders.
	Media map[string]dirfs.Ref

	// MediaFolders lists the folder names in which a file for this game
	// was found, in first-seen order. Membership includes folders that
	// are not part of the known taxonomy.
	MediaFolders []string
}

// NewGame creates an empty record for the given console and base name.
func NewGame(console, name string) *Game {
	return &Game{
		ID:      GameID(console, name),
		Name:    name,
		Console: console,
		Media:   make(map[string]dirfs.Ref),
	}
}

// SetMedia records a file for the folder named folder. If the folder maps
// to a known category the slot and presence flags are updated; unknown
// folders only join MediaFolders. A later call for the same slot replaces
// the earlier one.
func (g *Game) SetMedia(folder string, ref dirfs.Ref) {
	if cat, ok := CategoryByFolder(folder); ok {
		if cat.Video() {
			// Presence only: no handle retained for video slots.
			if cat.Key == CategoryVideos {
				g.HasVideo = true
			}
		} else {
			g.Media[cat.Key] = ref
			switch cat.Key {
			case CategoryCovers:
				g.HasCover = true
			case CategoryMarquees:
				g.HasLogo = true
			}
		}
	}
	if !slices.Contains(g.MediaFolders, folder) {
		g.MediaFolders = append(g.MediaFolders, folder)
	}
}

// ClearMedia removes the slot for the folder named folder and keeps the
// presence flags in sync.
func (g *Game) ClearMedia(folder string) {
	if cat, ok := CategoryByFolder(folder); ok {
		delete(g.Media, cat.Key)
		switch cat.Key {
		case CategoryCovers:
			g.HasCover = false
		case CategoryMarquees:
			g.HasLogo = false
		case CategoryVideos:
			g.HasVideo = false
		}
	}
	if i := slices.Index(g.MediaFolders, folder); i >= 0 {
		g.MediaFolders = slices.Delete(g.MediaFolders, i, i+1)
	}
}

// MediaCount returns the number of folders holding a file for this game.
func (g *Game) MediaCount() int { return len(g.MediaFolders) }

// BaseName strips the final extension from a filename. Only the last
// ".ext" is removed: "Sonic.the.Hedgehog.png" becomes
// "Sonic.the.Hedgehog". A name without an extension is returned as is.
func BaseName(filename string) string {
	ext := path.Ext(filename)
	return strings.TrimSuffix(filename, ext)
}
