package media

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/gamedia/pkg/dirfs"
)

func TestWriteFile_CreatesFoldersAndFile(t *testing.T) {
	base := t.TempDir()
	root, err := dirfs.OpenRoot(base, dirfs.ModeReadWrite)
	require.NoError(t, err)

	ref, err := WriteFile(context.Background(), root, "nes", "Zelda", "covers", []byte("cover data"))
	require.NoError(t, err)
	assert.Equal(t, "Zelda.jpg", ref.Name())

	data, err := os.ReadFile(filepath.Join(base, "nes", "covers", "Zelda.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "cover data", string(data))
}

func TestWriteFile_OverwriteKeepsOnlySecond(t *testing.T) {
	base := t.TempDir()
	root, err := dirfs.OpenRoot(base, dirfs.ModeReadWrite)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = WriteFile(ctx, root, "nes", "Zelda", "covers", []byte("first"))
	require.NoError(t, err)
	_, err = WriteFile(ctx, root, "nes", "Zelda", "covers", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(base, "nes", "covers", "Zelda.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteFile_CategoryExtension(t *testing.T) {
	base := t.TempDir()
	root, err := dirfs.OpenRoot(base, dirfs.ModeReadWrite)
	require.NoError(t, err)

	_, err = WriteFile(context.Background(), root, "snes", "Chrono Trigger", "marquees", []byte("png"))
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(base, "snes", "marquees", "Chrono Trigger.png"))
	assert.NoError(t, statErr)
}

func TestWriteFile_ReadOnlyRootFails(t *testing.T) {
	root, err := dirfs.OpenRoot(t.TempDir(), dirfs.ModeRead)
	require.NoError(t, err)

	_, err = WriteFile(context.Background(), root, "nes", "Zelda", "covers", []byte("x"))
	assert.ErrorIs(t, err, dirfs.ErrPermission)
}

func TestWriteFile_Validation(t *testing.T) {
	root, err := dirfs.OpenRoot(t.TempDir(), dirfs.ModeReadWrite)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = WriteFile(ctx, root, "nes", "Zelda", "posters", []byte("x"))
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = WriteFile(ctx, root, "c64", "Zelda", "covers", []byte("x"))
	assert.ErrorIs(t, err, ErrUnknownConsole)

	_, err = WriteFile(ctx, root, "nes", "   ", "covers", []byte("x"))
	assert.ErrorIs(t, err, ErrEmptyGameName)
}
