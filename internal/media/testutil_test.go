package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmunix/gamedia/pkg/dirfs"
)

// setupRoot creates a temp media root populated with the given files and
// opens it with the requested mode. Keys are slash-separated paths
// relative to the root; values are file contents.
func setupRoot(t *testing.T, mode dirfs.Mode, files map[string]string) *dirfs.Root {
	t.Helper()
	base := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(base, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	root, err := dirfs.OpenRoot(base, mode)
	require.NoError(t, err, "open root")
	return root
}
