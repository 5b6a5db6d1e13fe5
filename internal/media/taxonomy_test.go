package media

import "testing"

func TestCategoryLookups(t *testing.T) {
	c, ok := CategoryByKey("covers")
	if !ok || c.Ext != ".jpg" || c.Accept != "image/jpeg" {
		t.Errorf("CategoryByKey(covers) = %+v, %v", c, ok)
	}
	if _, ok := CategoryByKey("posters"); ok {
		t.Error("unexpected category 'posters'")
	}

	c, ok = CategoryByFolder("marquees")
	if !ok || c.Ext != ".png" {
		t.Errorf("CategoryByFolder(marquees) = %+v, %v", c, ok)
	}
}

func TestVideoCategories(t *testing.T) {
	for _, c := range Categories {
		want := c.Key == "videos"
		if c.Video() != want {
			t.Errorf("%s.Video() = %v, want %v", c.Key, c.Video(), want)
		}
	}
}

func TestKnownConsole(t *testing.T) {
	for _, id := range []string{"nes", "snes", "ps1", "switch", "neogeo"} {
		if !KnownConsole(id) {
			t.Errorf("KnownConsole(%q) = false", id)
		}
	}
	if KnownConsole("c64") {
		t.Error("KnownConsole(c64) = true")
	}

	c, ok := ConsoleByID("gba")
	if !ok || c.Label != "Game Boy Advance" {
		t.Errorf("ConsoleByID(gba) = %+v, %v", c, ok)
	}
}
