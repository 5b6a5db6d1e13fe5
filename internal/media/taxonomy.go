// Package media implements the ES-DE downloaded_media layout: scanning a
// media root into per-game records, writing media slots, and deleting a
// game's files across category folders.
package media

import "strings"

// Category describes one media slot in the ES-DE layout.
type Category struct {
	Key         string // stable identifier, equals Folder for all known categories
	Folder      string // folder name under the console directory
	Ext         string // canonical file extension, including the dot
	Accept      string // MIME type written to this slot
	Label       string // user-facing label
	Description string
}

// Video reports whether the category holds video content. Video slots are
// tracked presence-only: no read handle is retained for them.
func (c Category) Video() bool {
	return strings.HasPrefix(c.Accept, "video/")
}

// Console is one recognized system folder.
type Console struct {
	ID    string // folder name under the media root
	Label string
}

// Category keys with dedicated presence flags on Game.
const (
	CategoryCovers   = "covers"
	CategoryMarquees = "marquees"
	CategoryVideos   = "videos"
)

// Categories is the fixed media taxonomy, in display order.
var Categories = []Category{
	{Key: "covers", Folder: "covers", Ext: ".jpg", Accept: "image/jpeg", Label: "Cover Image", Description: "Main cover art for the game"},
	{Key: "marquees", Folder: "marquees", Ext: ".png", Accept: "image/png", Label: "Marquee (Logo)", Description: "Game logo, usually transparent PNG"},
	{Key: "videos", Folder: "videos", Ext: ".mp4", Accept: "video/mp4", Label: "Video", Description: "Gameplay video or trailer"},
	{Key: "3dboxes", Folder: "3dboxes", Ext: ".jpg", Accept: "image/jpeg", Label: "3D Box", Description: "3D render of the game box"},
	{Key: "backcovers", Folder: "backcovers", Ext: ".jpg", Accept: "image/jpeg", Label: "Back Cover", Description: "Back of the box art"},
	{Key: "fanart", Folder: "fanart", Ext: ".jpg", Accept: "image/jpeg", Label: "Fan Art", Description: "Fan-created artwork for the game"},
	{Key: "physicalmedia", Folder: "physicalmedia", Ext: ".jpg", Accept: "image/jpeg", Label: "Physical Media", Description: "Image of the actual physical media (cartridge, disc, etc.)"},
	{Key: "screenshots", Folder: "screenshots", Ext: ".jpg", Accept: "image/jpeg", Label: "Screenshot", Description: "In-game screenshot"},
	{Key: "titlescreens", Folder: "titlescreens", Ext: ".jpg", Accept: "image/jpeg", Label: "Title Screen", Description: "Game title screen or menu"},
}

// Consoles is the fixed catalog of recognized systems.
var Consoles = []Console{
	{ID: "gba", Label: "Game Boy Advance"},
	{ID: "gb", Label: "Game Boy"},
	{ID: "gbc", Label: "Game Boy Color"},
	{ID: "nes", Label: "Nintendo Entertainment System"},
	{ID: "snes", Label: "Super Nintendo"},
	{ID: "n64", Label: "Nintendo 64"},
	{ID: "gc", Label: "GameCube"},
	{ID: "wii", Label: "Nintendo Wii"},
	{ID: "wiiu", Label: "Nintendo Wii U"},
	{ID: "switch", Label: "Nintendo Switch"},
	{ID: "ps1", Label: "PlayStation"},
	{ID: "ps2", Label: "PlayStation 2"},
	{ID: "ps3", Label: "PlayStation 3"},
	{ID: "ps4", Label: "PlayStation 4"},
	{ID: "ps5", Label: "PlayStation 5"},
	{ID: "psp", Label: "PlayStation Portable"},
	{ID: "psvita", Label: "PlayStation Vita"},
	{ID: "xbox", Label: "Xbox"},
	{ID: "xbox360", Label: "Xbox 360"},
	{ID: "xboxone", Label: "Xbox One"},
	{ID: "segamd", Label: "Sega Mega Drive/Genesis"},
	{ID: "segacd", Label: "Sega CD"},
	{ID: "saturn", Label: "Sega Saturn"},
	{ID: "dreamcast", Label: "Sega Dreamcast"},
	{ID: "arcade", Label: "Arcade"},
	{ID: "neogeo", Label: "Neo Geo"},
}

var (
	categoriesByKey    = make(map[string]Category, len(Categories))
	categoriesByFolder = make(map[string]Category, len(Categories))
	consolesByID       = make(map[string]Console, len(Consoles))
)

func init() {
	for _, c := range Categories {
		categoriesByKey[c.Key] = c
		categoriesByFolder[c.Folder] = c
	}
	for _, c := range Consoles {
		consolesByID[c.ID] = c
	}
}

// CategoryByKey looks up a category by its key.
func CategoryByKey(key string) (Category, bool) {
	c, ok := categoriesByKey[key]
	return c, ok
}

// CategoryByFolder looks up a category by its folder name.
func CategoryByFolder(folder string) (Category, bool) {
	c, ok := categoriesByFolder[folder]
	return c, ok
}

// ConsoleByID looks up a console by its folder name.
func ConsoleByID(id string) (Console, bool) {
	c, ok := consolesByID[id]
	return c, ok
}

// KnownConsole reports whether id is a recognized console folder name.
func KnownConsole(id string) bool {
	_, ok := consolesByID[id]
	return ok
}
