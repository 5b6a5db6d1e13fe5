package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/gamedia/internal/media"
)

func game(console, name string, folders ...string) *media.Game {
	g := media.NewGame(console, name)
	for _, f := range folders {
		g.SetMedia(f, nil)
	}
	return g
}

func TestReplaceAndGet(t *testing.T) {
	c := New()
	c.Replace([]*media.Game{
		game("nes", "Zelda", "covers"),
		game("snes", "Chrono Trigger", "marquees"),
	})

	assert.Equal(t, 2, c.Len())

	g, ok := c.Get("nes_Zelda")
	require.True(t, ok)
	assert.Equal(t, "Zelda", g.Name)

	_, ok = c.Get("nes_Metroid")
	assert.False(t, ok)

	// Replace drops previous content entirely.
	c.Replace([]*media.Game{game("gba", "Advance Wars", "covers")})
	assert.Equal(t, 1, c.Len())
	_, ok = c.Get("nes_Zelda")
	assert.False(t, ok)
}

func TestApplyWrite_CreatesLazily(t *testing.T) {
	c := New()

	g, err := c.ApplyWrite("nes", "Zelda", "covers", nil)
	require.NoError(t, err)
	assert.Equal(t, "nes_Zelda", g.ID)
	assert.True(t, g.HasCover)
	assert.Equal(t, []string{"covers"}, g.MediaFolders)
	assert.Equal(t, 1, c.Len())

	// Second write to another slot updates the same record.
	g2, err := c.ApplyWrite("nes", "Zelda", "marquees", nil)
	require.NoError(t, err)
	assert.Same(t, g, g2)
	assert.True(t, g2.HasLogo)
	assert.Equal(t, 1, c.Len())
}

func TestApplyWrite_UnknownCategory(t *testing.T) {
	c := New()
	_, err := c.ApplyWrite("nes", "Zelda", "posters", nil)
	assert.ErrorIs(t, err, media.ErrUnknownCategory)
	assert.Zero(t, c.Len())
}

func TestApplyDelete(t *testing.T) {
	c := New()
	c.Replace([]*media.Game{game("nes", "Zelda", "covers")})

	assert.True(t, c.ApplyDelete("nes", "Zelda"))
	assert.Zero(t, c.Len())
	assert.False(t, c.ApplyDelete("nes", "Zelda"))
}
