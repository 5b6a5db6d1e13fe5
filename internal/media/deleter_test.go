package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/gamedia/pkg/dirfs"
)

func TestDelete_RemovesAcrossFolders(t *testing.T) {
	root := setupRoot(t, dirfs.ModeReadWrite, map[string]string{
		"nes/covers/Zelda.jpg":    "c",
		"nes/marquees/Zelda.png":  "l",
		"nes/videos/Zelda.mp4":    "v",
		"nes/covers/Metroid.jpg":  "keep",
	})

	deleted, err := Delete(context.Background(), root, "nes", "Zelda", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	// Unmatched base names in the same folders stay untouched.
	_, statErr := os.Stat(filepath.Join(root.Path(), "nes", "covers", "Metroid.jpg"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(root.Path(), "nes", "covers", "Zelda.jpg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDelete_MissingCategoryFoldersSkipped(t *testing.T) {
	root := setupRoot(t, dirfs.ModeReadWrite, map[string]string{
		"nes/covers/Zelda.jpg": "c",
	})

	deleted, err := Delete(context.Background(), root, "nes", "Zelda", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestDelete_ConsoleNotFound(t *testing.T) {
	root := setupRoot(t, dirfs.ModeReadWrite, nil)

	_, err := Delete(context.Background(), root, "nes", "Zelda", nil)
	assert.ErrorIs(t, err, ErrConsoleNotFound)
}

func TestDelete_NoMatchesIsNoOp(t *testing.T) {
	root := setupRoot(t, dirfs.ModeReadWrite, map[string]string{
		"nes/covers/Metroid.jpg": "keep",
	})

	deleted, err := Delete(context.Background(), root, "nes", "Zelda", nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestDelete_ExactCaseSensitiveMatch(t *testing.T) {
	root := setupRoot(t, dirfs.ModeReadWrite, map[string]string{
		"nes/covers/zelda.jpg":       "lower",
		"nes/covers/Zelda.jpg":       "exact",
		"nes/covers/Zelda II.jpg":    "prefix",
		"nes/screenshots/Zelda.png":  "shot",
	})

	deleted, err := Delete(context.Background(), root, "nes", "Zelda", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	for _, keep := range []string{"covers/zelda.jpg", "covers/Zelda II.jpg"} {
		_, statErr := os.Stat(filepath.Join(root.Path(), "nes", filepath.FromSlash(keep)))
		assert.NoError(t, statErr, keep)
	}
}

func TestDelete_ReadOnlyRootFails(t *testing.T) {
	root := setupRoot(t, dirfs.ModeRead, map[string]string{
		"nes/covers/Zelda.jpg": "c",
	})

	_, err := Delete(context.Background(), root, "nes", "Zelda", nil)
	assert.ErrorIs(t, err, dirfs.ErrPermission)
}

func TestDelete_UnknownConsoleRejected(t *testing.T) {
	root := setupRoot(t, dirfs.ModeReadWrite, nil)
	_, err := Delete(context.Background(), root, "c64", "Zelda", nil)
	assert.ErrorIs(t, err, ErrUnknownConsole)
}

func TestDeleteError_Message(t *testing.T) {
	err := &DeleteError{
		Console: "nes",
		Game:    "Zelda",
		Deleted: 1,
		Failed: []FileError{
			{Folder: "covers", Name: "Zelda.jpg", Err: errors.New("busy")},
		},
	}
	msg := err.Error()
	assert.Contains(t, msg, "nes/Zelda")
	assert.Contains(t, msg, "1 deleted")
	assert.Contains(t, msg, "covers/Zelda.jpg")
}
