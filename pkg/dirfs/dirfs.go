// Package dirfs models directory access as capability-style handles.
//
// A Dir is an opaque handle to one directory: it can list its children,
// descend into subdirectories, and read, write, or remove files directly
// inside it. Nothing in the package exposes absolute paths to callers, so
// code built on Dir cannot reach outside the tree it was handed.
package dirfs

import "context"

// Kind distinguishes directory entries.
type Kind string

const (
	KindFile Kind = "file"
	KindDir  Kind = "directory"
)

// Entry is one child of a directory.
type Entry struct {
	Name string
	Kind Kind
}

// Dir is a handle to a single directory.
//
// List returns entries sorted lexicographically by name. Callers that
// resolve name collisions with a last-one-wins rule therefore get a
// deterministic outcome.
type Dir interface {
	// Name returns the directory's own name (not a path).
	Name() string

	// List enumerates the immediate children.
	List(ctx context.Context) ([]Entry, error)

	// Dir returns a handle to the named subdirectory.
	// Returns ErrNotFound if it does not exist, ErrNotDirectory if the
	// name refers to a file.
	Dir(name string) (Dir, error)

	// EnsureDir returns a handle to the named subdirectory, creating it
	// if absent.
	EnsureDir(name string) (Dir, error)

	// Open returns a read handle to the named file.
	Open(name string) (Ref, error)

	// WriteFile creates or truncates the named file with the given
	// content. The write is whole-file: on error no partial content is
	// left behind.
	WriteFile(name string, data []byte) error

	// Remove deletes the named file.
	Remove(name string) error
}

// Ref is a read handle to a single file.
type Ref interface {
	// Name returns the file's name including extension.
	Name() string

	// Read returns the full file content.
	Read() ([]byte, error)

	// Size returns the file size in bytes.
	Size() (int64, error)
}
