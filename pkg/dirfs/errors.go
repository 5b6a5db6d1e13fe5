package dirfs

import "errors"

var (
	// ErrNotFound indicates the named entry does not exist.
	ErrNotFound = errors.New("entry not found")

	// ErrNotDirectory indicates the named entry exists but is a file.
	ErrNotDirectory = errors.New("entry is not a directory")

	// ErrPermission indicates the operation was denied by the filesystem
	// or by the root's access mode.
	ErrPermission = errors.New("permission denied")

	// ErrInvalidName indicates a name containing path separators, "..",
	// or other components that would escape the directory.
	ErrInvalidName = errors.New("invalid entry name")
)
