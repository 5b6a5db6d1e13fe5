package dirfs

import (
	"context"
	"fmt"
	"os"
)

// Mode is the access level granted when a root was opened.
type Mode int

const (
	// ModeRead grants read-only access.
	ModeRead Mode = iota
	// ModeReadWrite grants read and write access.
	ModeReadWrite
)

func (m Mode) String() string {
	if m == ModeReadWrite {
		return "readwrite"
	}
	return "read"
}

// Root is the long-lived handle to a media root, held for the duration of
// a browsing or editing session. The access mode is fixed when the root is
// opened; mutating operations must call RequireWrite first, since the
// underlying grant can disappear between operations (unmounted share,
// chmod, removed directory).
//
// Root holds its directory in a named field rather than embedding Dir: an
// anonymous Dir field would shadow the interface's promoted Dir(name)
// method and make the selector ambiguous. The delegating methods below
// keep Root satisfying Dir.
type Root struct {
	dir  Dir
	mode Mode
	path string
}

var _ Dir = (*Root)(nil)

// OpenRoot opens the directory at path as a session root.
// With ModeReadWrite the directory must currently be writable.
func OpenRoot(path string, mode Mode) (*Root, error) {
	dir, err := NewOSDir(path)
	if err != nil {
		return nil, err
	}
	r := &Root{dir: dir, mode: mode, path: path}
	if mode == ModeReadWrite {
		if err := r.RequireWrite(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Mode returns the access level the root was opened with.
func (r *Root) Mode() Mode { return r.mode }

// Path returns the root's filesystem path.
func (r *Root) Path() string { return r.path }

// Name returns the root directory's own name.
func (r *Root) Name() string { return r.dir.Name() }

// List enumerates the root's immediate children.
func (r *Root) List(ctx context.Context) ([]Entry, error) { return r.dir.List(ctx) }

// Dir returns a handle to the named subdirectory of the root.
func (r *Root) Dir(name string) (Dir, error) { return r.dir.Dir(name) }

// EnsureDir returns a handle to the named subdirectory, creating it if
// absent.
func (r *Root) EnsureDir(name string) (Dir, error) { return r.dir.EnsureDir(name) }

// Open returns a read handle to the named file in the root.
func (r *Root) Open(name string) (Ref, error) { return r.dir.Open(name) }

// WriteFile creates or truncates the named file in the root.
func (r *Root) WriteFile(name string, data []byte) error { return r.dir.WriteFile(name, data) }

// Remove deletes the named file from the root.
func (r *Root) Remove(name string) error { return r.dir.Remove(name) }

// RequireWrite re-validates write access to the root. It fails with
// ErrPermission if the root was opened read-only or if write access has
// been revoked since it was opened.
func (r *Root) RequireWrite() error {
	if r.mode != ModeReadWrite {
		return fmt.Errorf("root opened read-only: %w", ErrPermission)
	}
	if _, err := os.Stat(r.path); err != nil {
		return mapOSError(err)
	}
	// Probe with a real create: permission bits alone don't reflect
	// read-only mounts or ACLs.
	probe, err := os.CreateTemp(r.path, ".gamedia-write-probe*")
	if err != nil {
		return fmt.Errorf("%w: root not writable: %v", ErrPermission, err)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}
