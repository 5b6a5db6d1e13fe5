package dirfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// osDir implements Dir over a directory on the local filesystem.
type osDir struct {
	path string
}

// NewOSDir returns a Dir backed by the directory at path.
// Returns ErrNotFound if the path does not exist, ErrNotDirectory if it
// refers to a file.
func NewOSDir(path string) (Dir, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, mapOSError(err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}
	return &osDir{path: filepath.Clean(path)}, nil
}

func (d *osDir) Name() string { return filepath.Base(d.path) }

func (d *osDir) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// os.ReadDir sorts by filename, which is the canonical enumeration
	// order the Dir contract promises.
	dirents, err := os.ReadDir(d.path)
	if err != nil {
		return nil, mapOSError(err)
	}
	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		kind := KindFile
		if de.IsDir() {
			kind = KindDir
		}
		entries = append(entries, Entry{Name: de.Name(), Kind: kind})
	}
	return entries, nil
}

func (d *osDir) Dir(name string) (Dir, error) {
	child, err := d.childPath(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(child)
	if err != nil {
		return nil, mapOSError(err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", name, ErrNotDirectory)
	}
	return &osDir{path: child}, nil
}

func (d *osDir) EnsureDir(name string) (Dir, error) {
	child, err := d.childPath(name)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(child, 0755); err != nil {
		return nil, mapOSError(err)
	}
	return &osDir{path: child}, nil
}

func (d *osDir) Open(name string) (Ref, error) {
	child, err := d.childPath(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(child)
	if err != nil {
		return nil, mapOSError(err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", name)
	}
	return &osRef{path: child}, nil
}

func (d *osDir) WriteFile(name string, data []byte) error {
	child, err := d.childPath(name)
	if err != nil {
		return err
	}
	// Write to a temp file in the same directory and rename, so a failed
	// write never leaves a truncated file under the final name.
	tmp, err := os.CreateTemp(d.path, "."+name+".tmp*")
	if err != nil {
		return mapOSError(err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return mapOSError(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return mapOSError(err)
	}
	if err := os.Rename(tmpName, child); err != nil {
		_ = os.Remove(tmpName)
		return mapOSError(err)
	}
	return nil
}

func (d *osDir) Remove(name string) error {
	child, err := d.childPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(child); err != nil {
		return mapOSError(err)
	}
	return nil
}

// childPath validates name and joins it to the directory path.
func (d *osDir) childPath(name string) (string, error) {
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return filepath.Join(d.path, name), nil
}

// osRef implements Ref over a file on the local filesystem.
type osRef struct {
	path string
}

func (r *osRef) Name() string { return filepath.Base(r.path) }

func (r *osRef) Read() ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, mapOSError(err)
	}
	return data, nil
}

func (r *osRef) Size() (int64, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		return 0, mapOSError(err)
	}
	return info.Size(), nil
}

func mapOSError(err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %v", ErrPermission, err)
	default:
		return err
	}
}
